package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/autoflow/autoflow/pkg/apiserver/middleware"
	"github.com/autoflow/autoflow/pkg/executor"
	"github.com/autoflow/autoflow/pkg/metrics"
	"github.com/autoflow/autoflow/pkg/model"
	"github.com/autoflow/autoflow/pkg/store/memory"
)

type ExecutionHandler struct {
	store     *memory.Store
	simulator *executor.Simulator
	logger    *zap.Logger
}

func NewExecutionHandler(store *memory.Store, simulator *executor.Simulator, logger *zap.Logger) *ExecutionHandler {
	return &ExecutionHandler{store: store, simulator: simulator, logger: logger}
}

// Create starts a simulated run of the caller's workflow. The execution is
// returned immediately in the running state; the simulator flips it to
// completed after the configured delay.
func (h *ExecutionHandler) Create(c *gin.Context) {
	workflowID, err := uuid.Parse(c.Param("workflowId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workflow id"})
		return
	}

	workflow, err := h.store.GetWorkflow(workflowID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
		return
	}
	if workflow.UserID != middleware.UserID(c) && !middleware.IsAdmin(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
		return
	}

	execution := model.Execution{
		ID:         uuid.New(),
		UserID:     middleware.UserID(c),
		WorkflowID: workflow.ID,
		Status:     model.ExecutionRunning,
		Logs:       []string{"Execution started"},
	}

	h.store.CreateExecution(&execution)
	h.simulator.Start(execution.ID, workflow)

	metrics.ExecutionsTotal.WithLabelValues(string(model.ExecutionRunning)).Inc()
	metrics.ActiveExecutions.Inc()

	h.logger.Info("execution started",
		zap.String("execution_id", execution.ID.String()),
		zap.String("workflow_id", workflow.ID.String()))

	c.JSON(http.StatusCreated, execution)
}

func (h *ExecutionHandler) List(c *gin.Context) {
	owner := middleware.UserID(c)
	if middleware.IsAdmin(c) {
		owner = uuid.Nil
	}

	executions := h.store.ListExecutions(owner, uuid.Nil)
	c.JSON(http.StatusOK, gin.H{
		"executions": executions,
		"total":      len(executions),
	})
}

func (h *ExecutionHandler) ListByWorkflow(c *gin.Context) {
	workflowID, err := uuid.Parse(c.Param("workflowId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workflow id"})
		return
	}

	owner := middleware.UserID(c)
	if middleware.IsAdmin(c) {
		owner = uuid.Nil
	}

	executions := h.store.ListExecutions(owner, workflowID)
	c.JSON(http.StatusOK, gin.H{
		"executions": executions,
		"total":      len(executions),
	})
}
