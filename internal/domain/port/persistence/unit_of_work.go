package persistence

import "context"

// UnitOfWork coordinates writes that must land together: entry-insert plus
// balance-update, or password-change plus token consumption. Repositories
// obtained from a transactional context share one database transaction.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Goals returns a goal repository bound to the current transaction
	Goals(ctx context.Context) GoalRepository

	// Entries returns an entry repository bound to the current transaction
	Entries(ctx context.Context) EntryRepository

	// Users returns a user repository bound to the current transaction
	Users(ctx context.Context) UserRepository

	// ResetTokens returns a reset-token repository bound to the current transaction
	ResetTokens(ctx context.Context) ResetTokenRepository

	// VerificationTokens returns a verification-token repository bound to the current transaction
	VerificationTokens(ctx context.Context) VerificationTokenRepository
}
