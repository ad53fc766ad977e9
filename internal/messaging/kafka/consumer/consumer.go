package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-hrms/internal/events"

	"github.com/shopspring/decimal"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// StructureProvisioner creates the onboarding salary structure for a new employee.
type StructureProvisioner interface {
	EnsureDefault(ctx context.Context, employeeID string, ctc decimal.Decimal, effectiveFrom time.Time) (bool, error)
}

type lifecycleEnvelope struct {
	EventType string `json:"event_type"`
}

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	structures StructureProvisioner,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if !handleLifecycleMessage(ctx, msg, structures, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// handleLifecycleMessage reports whether msg may be committed. Transient failures
// leave the offset uncommitted so the message is redelivered.
func handleLifecycleMessage(
	ctx context.Context,
	msg kafkago.Message,
	structures StructureProvisioner,
	log *zap.Logger,
) bool {
	var env lifecycleEnvelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		log.Error("decode employee lifecycle event failed", zap.Error(err))
		return true
	}

	switch env.EventType {
	case events.EmployeeCreated:
		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			return true
		}

		ctc, err := decimal.NewFromString(event.Salary)
		if err != nil {
			log.Warn("employee_created event has no usable salary, skipping",
				zap.String("employee_id", event.EmployeeID),
				zap.String("salary", event.Salary),
			)
			return true
		}

		effectiveFrom, err := time.Parse("2006-01-02", event.JoinDate)
		if err != nil {
			effectiveFrom = event.OccurredAt.UTC().Truncate(24 * time.Hour)
		}

		created, err := structures.EnsureDefault(ctx, event.EmployeeID, ctc, effectiveFrom)
		if err != nil {
			log.Error("create default salary structure failed",
				zap.String("request_id", event.RequestID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			return false
		}

		if created {
			log.Info("salary structure created from employee_created event",
				zap.String("request_id", event.RequestID),
				zap.String("employee_id", event.EmployeeID),
			)
		} else {
			log.Warn("active salary structure already exists, skipping",
				zap.String("employee_id", event.EmployeeID),
			)
		}
		return true

	case events.EmployeeDeleted:
		var event events.EmployeeDeletedEvent
		if err := json.Unmarshal(msg.Value, &event); err == nil {
			log.Info("employee deleted",
				zap.String("employee_id", event.EmployeeID),
				zap.String("employee_code", event.EmployeeCode),
				zap.String("deleted_by", event.DeletedBy),
			)
		}
		return true

	default:
		log.Debug("ignoring employee lifecycle event", zap.String("event_type", env.EventType))
		return true
	}
}
