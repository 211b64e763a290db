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

type TemplateHandler struct {
	store  *memory.Store
	logger *zap.Logger
}

func NewTemplateHandler(store *memory.Store, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{store: store, logger: logger}
}

func (h *TemplateHandler) List(c *gin.Context) {
	templates := h.store.ListTemplates()
	c.JSON(http.StatusOK, gin.H{
		"templates": templates,
		"total":     len(templates),
	})
}

// Deploy clones a catalog template into a new active workflow owned by the
// caller. The template's first trigger becomes the workflow trigger.
func (h *TemplateHandler) Deploy(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	template, err := h.store.GetTemplate(templateID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}

	trigger := ""
	if len(template.Triggers) > 0 {
		trigger = template.Triggers[0]
	}

	workflow := model.Workflow{
		ID:          uuid.New(),
		UserID:      middleware.UserID(c),
		Name:        template.Name,
		Description: template.Description,
		Trigger:     trigger,
		Actions:     template.Actions,
		Status:      model.WorkflowActive,
	}
	if workflow.Actions == nil {
		workflow.Actions = []string{}
	}

	h.store.CreateWorkflow(&workflow)

	h.logger.Info("template deployed",
		zap.String("template_id", template.ID.String()),
		zap.String("workflow_id", workflow.ID.String()))

	c.JSON(http.StatusCreated, workflow)
}
