package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"ipay4u/config"
	deliverycontext "ipay4u/internal/delivery/context"
	"ipay4u/internal/domain/entity"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/repository"
	"ipay4u/internal/domain/service"
	"ipay4u/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxClientTxnIDLength = 255

	// Amounts are stored as numeric(18,2): at most 16 integer digits and 2 decimals.
	maxAmountMagnitude = 1e16
	maxAmountDecimals  = 2

	// publishTimeout bounds how long /notify waits on the event publisher.
	publishTimeout = 2 * time.Second
)

type eventIngestor struct {
	eventRepo              repository.PaymentEventRepository
	publisher              service.EventPublisher
	clock                  service.Clock
	metrics                service.MetricsRecorder
	allowNonPositiveAmount bool
	logger                 *slog.Logger
}

// EventIngestorParams holds dependencies for EventIngestor, injected by Fx.
type EventIngestorParams struct {
	fx.In

	EventRepo repository.PaymentEventRepository
	Publisher service.EventPublisher
	Clock     service.Clock
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewEventIngestor is the constructor for eventIngestor.
func NewEventIngestor(params EventIngestorParams) usecase.EventIngestor {
	return &eventIngestor{
		eventRepo:              params.EventRepo,
		publisher:              params.Publisher,
		clock:                  params.Clock,
		metrics:                params.Metrics,
		allowNonPositiveAmount: params.Config.Ingest.AllowNonPositiveAmount,
		logger:                 params.Logger,
	}
}

func (ing *eventIngestor) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, ing.logger)
}

func (ing *eventIngestor) Ingest(ctx context.Context, device *entity.Device, payload *usecase.NotifyPayload) (*usecase.IngestResult, error) {
	result, err := ing.ingest(ctx, device, payload)
	if err != nil {
		ing.metrics.RecordIngestOutcome(outcomeOf(err))

		return nil, err
	}
	ing.metrics.RecordIngestOutcome(result.Status)

	return result, nil
}

func (ing *eventIngestor) ingest(ctx context.Context, device *entity.Device, payload *usecase.NotifyPayload) (*usecase.IngestResult, error) {
	if device == nil {
		return nil, domainerrors.ErrInvalidDevice
	}
	if err := ing.validate(payload); err != nil {
		return nil, err
	}

	event := &entity.PaymentEvent{
		ID:          uuid.New(),
		ClientTxnID: payload.ClientTxnID,
		DeviceID:    device.DeviceID,
		Bank:        payload.Bank,
		Amount:      *payload.Amount,
		Title:       payload.Title,
		Message:     payload.Message,
		CreatedAt:   ing.clock.Now(),
	}

	err := ing.eventRepo.CreatePaymentEvent(ctx, event)
	if errors.Is(err, repository.ErrDuplicatePaymentEvent) {
		return ing.duplicate(ctx, device, payload.ClientTxnID), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to record payment event")
	}

	ing.log(ctx).Info("Payment event recorded",
		slog.String("event_id", event.ID.String()),
		slog.String("client_txn_id", event.ClientTxnID),
		slog.String("device_id", event.DeviceID),
	)

	ing.publish(ctx, event)

	return &usecase.IngestResult{
		Status:      usecase.IngestStatusOK,
		ClientTxnID: event.ClientTxnID,
		EventID:     event.ID.String(),
	}, nil
}

// duplicate acknowledges a resubmitted event. The original event id is
// attached when it can be read back; the acknowledgement never fails.
func (ing *eventIngestor) duplicate(ctx context.Context, device *entity.Device, clientTxnID string) *usecase.IngestResult {
	result := &usecase.IngestResult{
		Status:      usecase.IngestStatusDuplicateIgnored,
		ClientTxnID: clientTxnID,
	}

	original, err := ing.eventRepo.FindPaymentEventByClientTxnID(ctx, clientTxnID)
	if err != nil {
		ing.log(ctx).Warn("Failed to read back duplicate payment event",
			slog.String("client_txn_id", clientTxnID),
			slog.Any("error", err),
		)
	} else {
		result.EventID = original.ID.String()
		if original.DeviceID != device.DeviceID {
			ing.log(ctx).Warn("Payment event resubmitted by a different device",
				slog.String("client_txn_id", clientTxnID),
				slog.String("original_device_id", original.DeviceID),
				slog.String("device_id", device.DeviceID),
			)
		}
	}

	ing.log(ctx).Info("Duplicate payment event ignored",
		slog.String("client_txn_id", clientTxnID),
		slog.String("device_id", device.DeviceID),
	)

	return result
}

func (ing *eventIngestor) validate(payload *usecase.NotifyPayload) error {
	if payload == nil {
		return domainerrors.ErrInvalidPayload.WithDetails("body is required")
	}
	if strings.TrimSpace(payload.ClientTxnID) == "" {
		return domainerrors.ErrInvalidPayload.WithDetails("client_txn_id is required")
	}
	if len(payload.ClientTxnID) > maxClientTxnIDLength {
		return domainerrors.ErrInvalidPayload.WithDetails("client_txn_id is too long")
	}
	if payload.Amount == nil {
		return domainerrors.ErrInvalidPayload.WithDetails("amount is required")
	}
	if math.IsNaN(*payload.Amount) || math.IsInf(*payload.Amount, 0) {
		return domainerrors.ErrInvalidPayload.WithDetails("amount must be a finite number")
	}
	if !ing.allowNonPositiveAmount && *payload.Amount <= 0 {
		return domainerrors.ErrInvalidPayload.WithDetails("amount must be positive")
	}
	if math.Abs(*payload.Amount) >= maxAmountMagnitude {
		return domainerrors.ErrInvalidPayload.WithDetails("amount is too large")
	}
	if decimalPlaces(*payload.Amount) > maxAmountDecimals {
		return domainerrors.ErrInvalidPayload.WithDetails("amount must have at most 2 decimal places")
	}

	return nil
}

// publish announces a stored event. Failures are logged and never reach the caller.
func (ing *eventIngestor) publish(ctx context.Context, event *entity.PaymentEvent) {
	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := ing.publisher.PublishPaymentRecorded(publishCtx, &service.PaymentRecordedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     event.ID.String(),
		ClientTxnID: event.ClientTxnID,
		DeviceID:    event.DeviceID,
		Bank:        event.Bank,
		Amount:      event.Amount,
		Title:       event.Title,
		Message:     event.Message,
		RecordedAt:  event.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		ing.log(ctx).Warn("Failed to publish payment event",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)
	}
}

// decimalPlaces counts the fractional digits of the shortest decimal form of v,
// which is the literal the client sent for any amount that fits the column.
func decimalPlaces(v float64) int {
	formatted := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(formatted, '.'); dot >= 0 {
		return len(formatted) - dot - 1
	}

	return 0
}
