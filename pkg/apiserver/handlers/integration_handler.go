package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/autoflow/autoflow/pkg/model"
	"github.com/autoflow/autoflow/pkg/store/memory"
)

type IntegrationHandler struct {
	store  *memory.Store
	logger *zap.Logger
}

func NewIntegrationHandler(store *memory.Store, logger *zap.Logger) *IntegrationHandler {
	return &IntegrationHandler{store: store, logger: logger}
}

type integrationCreateRequest struct {
	Name        string            `json:"name" binding:"required"`
	Type        string            `json:"type" binding:"required"`
	Status      string            `json:"status"`
	Description string            `json:"description"`
	Config      map[string]string `json:"config"`
}

func (h *IntegrationHandler) List(c *gin.Context) {
	integrations := h.store.ListIntegrations()
	c.JSON(http.StatusOK, gin.H{
		"integrations": integrations,
		"total":        len(integrations),
	})
}

func (h *IntegrationHandler) Create(c *gin.Context) {
	var req integrationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = model.IntegrationConnected
	}

	integration := model.Integration{
		ID:          uuid.New(),
		Name:        req.Name,
		Type:        req.Type,
		Status:      status,
		Description: req.Description,
		Config:      req.Config,
	}

	h.store.CreateIntegration(&integration)

	c.JSON(http.StatusCreated, integration)
}
