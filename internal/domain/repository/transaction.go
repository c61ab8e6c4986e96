package repository

import "context"

// TransactionManager runs use case work inside a single database transaction.
type TransactionManager interface {
	// Execute runs fn in a transaction. A non-nil error from fn rolls it back.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewDeviceRepository() DeviceRepository
	NewPaymentEventRepository() PaymentEventRepository
}
