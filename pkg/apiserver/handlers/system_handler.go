package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/autoflow/autoflow/pkg/store/memory"
)

type SystemHandler struct {
	store     *memory.Store
	logger    *zap.Logger
	env       string
	startedAt time.Time
}

func NewSystemHandler(store *memory.Store, logger *zap.Logger, env string) *SystemHandler {
	return &SystemHandler{store: store, logger: logger, env: env, startedAt: time.Now().UTC()}
}

func (h *SystemHandler) Stats(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, gin.H{
		"records":        h.store.Stats(),
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"goroutines":     runtime.NumGoroutine(),
		"heap_bytes":     mem.HeapAlloc,
		"env":            h.env,
	})
}
