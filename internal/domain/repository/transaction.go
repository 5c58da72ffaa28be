package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
//
// The claim protocol depends on Execute being the linearization point: when
// several observers race the same alarm, the store serializes their
// transactions, so exactly one re-read inside Execute can observe the unfired
// alarm and commit the flip.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the function
	// use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside the transaction shares one
// connection.
type RepositoryFactory interface {
	// NewAlarmRepository returns an AlarmRepository bound to the current transaction.
	NewAlarmRepository() AlarmRepository

	// NewNotificationRepository returns a NotificationRepository bound to the current transaction.
	NewNotificationRepository() NotificationRepository
}
