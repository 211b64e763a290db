package executor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/autoflow/autoflow/pkg/metrics"
	"github.com/autoflow/autoflow/pkg/model"
	"github.com/autoflow/autoflow/pkg/store/memory"
)

// Simulator fakes workflow runs: each Start spawns a goroutine that waits a
// fixed delay and then marks the execution completed, writing one log line
// per workflow action. There is no per-execution cancellation; Shutdown stops
// pending timers without completing them.
type Simulator struct {
	store  *memory.Store
	logger *zap.Logger
	delay  time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSimulator(store *memory.Store, logger *zap.Logger, delay time.Duration) *Simulator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Simulator{
		store:  store,
		logger: logger,
		delay:  delay,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Simulator) Start(executionID uuid.UUID, workflow *model.Workflow) {
	actions := append([]string(nil), workflow.Actions...)
	workflowName := workflow.Name

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-s.ctx.Done():
			return
		case <-timer.C:
		}

		logs := make([]string, 0, len(actions)+1)
		for i, action := range actions {
			logs = append(logs, fmt.Sprintf("Step %d: executed %s", i+1, action))
		}
		logs = append(logs, "Execution completed successfully")

		if err := s.store.CompleteExecution(executionID, logs); err != nil {
			s.logger.Error("failed to complete execution",
				zap.String("execution_id", executionID.String()),
				zap.Error(err))
			return
		}

		metrics.ExecutionsTotal.WithLabelValues(string(model.ExecutionCompleted)).Inc()
		metrics.ActiveExecutions.Dec()
		s.logger.Info("execution completed",
			zap.String("execution_id", executionID.String()),
			zap.String("workflow", workflowName))
	}()
}

// Shutdown cancels pending timers and waits for in-flight completions.
func (s *Simulator) Shutdown() {
	s.cancel()
	s.wg.Wait()
}
