package ports

import "context"

type ResetService interface {
	// Request generates a reset token for the account behind email, stores
	// its hash and dispatches the plaintext out-of-band.
	Request(ctx context.Context, email string) error
	// Consume redeems a presented token, updating the password on match.
	// The ledger record is deleted on first match regardless of the update
	// outcome, so a token can never be replayed.
	Consume(ctx context.Context, email, presentedToken, newPassword string) error
}
