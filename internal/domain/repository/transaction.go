// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// RepositoryFactory hands out repository instances that are all bound to the
// same database transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AuthRepo() AuthRepository
	RefreshTokenRepo() RefreshTokenRepository
}

// TransactionManager runs multi-repository operations atomically. The
// callback receives a factory whose repositories share one transaction;
// returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
