package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on
// a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repository operations obtained from the factory share
	// the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// TenantRepo returns a TenantRepository bound to the current transaction.
	TenantRepo() TenantRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// ClientRepo returns a ClientRepository bound to the current transaction.
	ClientRepo() ClientRepository

	// TransactionRepo returns a TransactionRepository bound to the current transaction.
	TransactionRepo() TransactionRepository
}
