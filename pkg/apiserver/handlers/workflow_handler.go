package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/autoflow/autoflow/pkg/apiserver/middleware"
	"github.com/autoflow/autoflow/pkg/model"
	"github.com/autoflow/autoflow/pkg/store/memory"
)

type WorkflowHandler struct {
	store  *memory.Store
	logger *zap.Logger
}

func NewWorkflowHandler(store *memory.Store, logger *zap.Logger) *WorkflowHandler {
	return &WorkflowHandler{store: store, logger: logger}
}

type workflowCreateRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Trigger     string   `json:"trigger"`
	Actions     []string `json:"actions"`
	Status      string   `json:"status"`
}

type workflowUpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Trigger     *string   `json:"trigger"`
	Actions     *[]string `json:"actions"`
	Status      *string   `json:"status"`
}

func (h *WorkflowHandler) Create(c *gin.Context) {
	var req workflowCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = model.WorkflowDraft
	}

	workflow := model.Workflow{
		ID:          uuid.New(),
		UserID:      middleware.UserID(c),
		Name:        req.Name,
		Description: req.Description,
		Trigger:     req.Trigger,
		Actions:     req.Actions,
		Status:      status,
	}
	if workflow.Actions == nil {
		workflow.Actions = []string{}
	}

	h.store.CreateWorkflow(&workflow)

	c.JSON(http.StatusCreated, workflow)
}

func (h *WorkflowHandler) List(c *gin.Context) {
	owner := middleware.UserID(c)
	if middleware.IsAdmin(c) {
		owner = uuid.Nil
	}

	workflows := h.store.ListWorkflows(owner)
	c.JSON(http.StatusOK, gin.H{
		"workflows": workflows,
		"total":     len(workflows),
	})
}

func (h *WorkflowHandler) Get(c *gin.Context) {
	workflow, ok := h.loadOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, workflow)
}

func (h *WorkflowHandler) Update(c *gin.Context) {
	workflow, ok := h.loadOwned(c)
	if !ok {
		return
	}

	var req workflowUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if req.Name != nil {
		workflow.Name = *req.Name
	}
	if req.Description != nil {
		workflow.Description = *req.Description
	}
	if req.Trigger != nil {
		workflow.Trigger = *req.Trigger
	}
	if req.Actions != nil {
		workflow.Actions = *req.Actions
	}
	if req.Status != nil {
		workflow.Status = *req.Status
	}

	if err := h.store.UpdateWorkflow(workflow); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
		return
	}

	c.JSON(http.StatusOK, workflow)
}

func (h *WorkflowHandler) Delete(c *gin.Context) {
	workflow, ok := h.loadOwned(c)
	if !ok {
		return
	}

	if err := h.store.DeleteWorkflow(workflow.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// loadOwned resolves :id and enforces ownership. Another user's workflow is
// reported as 404, not 403, so ids cannot be probed.
func (h *WorkflowHandler) loadOwned(c *gin.Context) (*model.Workflow, bool) {
	workflowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workflow id"})
		return nil, false
	}

	workflow, err := h.store.GetWorkflow(workflowID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
		return nil, false
	}

	if workflow.UserID != middleware.UserID(c) && !middleware.IsAdmin(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
		return nil, false
	}

	return workflow, true
}
