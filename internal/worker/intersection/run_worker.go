package intersection

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain/repository"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/usecase"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/worker"
)

// RunWorker consumes queued intersection runs, executes them and publishes
// the report to the completion stream. Events carry a full snapshot of the
// buffer and the selected layers, so the worker holds no interactive state.
type RunWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	executor     *usecase.RunExecutor
	consumerName string
}

// NewRunWorker creates a RunWorker.
func NewRunWorker(
	streamRepo repository.StreamRepository,
	executor *usecase.RunExecutor,
	consumerGroup string,
	logger *zap.Logger,
) *RunWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &RunWorker{
		BaseWorker:   worker.NewBaseWorker("intersection-run", consumerGroup, logger),
		streamRepo:   streamRepo,
		executor:     executor,
		consumerName: consumerName,
	}
}

// Start runs the consume loop until the context is cancelled or Stop is called.
func (w *RunWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RunWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamIntersectionRun, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamIntersectionRun, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes one queued run. Malformed messages are acked and
// skipped so they do not wedge the consumer group.
func (w *RunWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.RunRequestedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse run event, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	logger.Info("Processing queued run",
		zap.String("run_id", event.RunID.String()),
		zap.String("message_id", msg.ID),
		zap.Int("layers", len(event.Layers)))

	report := w.executor.Execute(ctx, event.Buffer, event.Layers)

	done := domain.RunCompletedEvent{
		RunID:  event.RunID,
		Report: report,
	}

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamIntersectionDone, done); err != nil {
		logger.Error("Failed to publish completion event",
			zap.String("run_id", event.RunID.String()),
			zap.Error(err))
		// The run itself is done; the message is still acked so a retry
		// does not re-query every layer.
	}

	w.ack(ctx, msg.ID)
}

func (w *RunWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamIntersectionRun, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
