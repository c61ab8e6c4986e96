package postgres

import (
	"context"

	"ipay4u/internal/domain/entity"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/repository"
	"ipay4u/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type paymentEventRepository struct {
	db *gorm.DB
}

// NewPaymentEventRepository is the constructor for paymentEventRepository.
func NewPaymentEventRepository(db *gorm.DB) repository.PaymentEventRepository {
	return &paymentEventRepository{
		db: db,
	}
}

// CreatePaymentEvent stores a payment event. A second event with the same
// client_txn_id is rejected with repository.ErrDuplicatePaymentEvent.
func (repo *paymentEventRepository) CreatePaymentEvent(ctx context.Context, event *entity.PaymentEvent) error {
	eventM := fromPaymentEventDomain(event)

	if err := repo.db.WithContext(ctx).Omit("Device").Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePaymentEvent
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidDevice.WrapMessage("payment event references an unknown device")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment event")
	}

	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindPaymentEventsByDevice lists a device's events, newest first.
func (repo *paymentEventRepository) FindPaymentEventsByDevice(ctx context.Context, deviceID string, limit, offset int) ([]*entity.PaymentEvent, error) {
	var eventsM []model.PaymentEventModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&eventsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list payment events")
	}

	events := make([]*entity.PaymentEvent, 0, len(eventsM))
	for i := range eventsM {
		events = append(events, toPaymentEventDomain(&eventsM[i]))
	}

	return events, nil
}

// FindPaymentEventByClientTxnID returns the event stored under the idempotency key.
func (repo *paymentEventRepository) FindPaymentEventByClientTxnID(ctx context.Context, clientTxnID string) (*entity.PaymentEvent, error) {
	var eventM model.PaymentEventModel

	if err := repo.db.WithContext(ctx).
		Where("client_txn_id = ?", clientTxnID).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentEventNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find payment event")
	}

	return toPaymentEventDomain(&eventM), nil
}

func fromPaymentEventDomain(event *entity.PaymentEvent) *model.PaymentEventModel {
	if event == nil {
		return nil
	}

	return &model.PaymentEventModel{
		ID:          event.ID,
		ClientTxnID: event.ClientTxnID,
		DeviceID:    event.DeviceID,
		Bank:        event.Bank,
		Amount:      event.Amount,
		Title:       event.Title,
		Message:     event.Message,
		CreatedAt:   event.CreatedAt,
	}
}

func toPaymentEventDomain(data *model.PaymentEventModel) *entity.PaymentEvent {
	if data == nil {
		return nil
	}

	return &entity.PaymentEvent{
		ID:          data.ID,
		ClientTxnID: data.ClientTxnID,
		DeviceID:    data.DeviceID,
		Bank:        data.Bank,
		Amount:      data.Amount,
		Title:       data.Title,
		Message:     data.Message,
		CreatedAt:   data.CreatedAt,
	}
}
