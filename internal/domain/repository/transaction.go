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
	// SellerRepo returns a SellerRepository bound to the current transaction.
	SellerRepo() SellerRepository

	// RatingRepo returns a RatingRepository bound to the current transaction.
	RatingRepo() RatingRepository

	// AdminRepo returns an AdminRepository bound to the current transaction.
	AdminRepo() AdminRepository

	// BannerRepo returns a BannerRepository bound to the current transaction.
	BannerRepo() BannerRepository

	// GroupRepo returns a GroupRepository bound to the current transaction.
	GroupRepo() GroupRepository
}
