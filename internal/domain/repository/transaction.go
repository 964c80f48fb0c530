package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewHouseholdRepository returns a HouseholdRepository instance bound to the current transaction.
	NewHouseholdRepository() HouseholdRepository

	// NewInvitationRepository returns an InvitationRepository instance bound to the current transaction.
	NewInvitationRepository() InvitationRepository

	// NewCategoryRepository returns a CategoryRepository instance bound to the current transaction.
	NewCategoryRepository() CategoryRepository

	// NewTransactionRepository returns a TransactionRepository instance bound to the current transaction.
	NewTransactionRepository() TransactionRepository

	// NewBudgetRepository returns a BudgetRepository instance bound to the current transaction.
	NewBudgetRepository() BudgetRepository

	// NewEventRepository returns an EventRepository instance bound to the current transaction.
	NewEventRepository() EventRepository
}
