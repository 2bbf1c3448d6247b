package ports

import "context"

// RoleManager mutates member roles on the chat platform.
type RoleManager interface {
	AddRole(ctx context.Context, guildID, userID, roleID string) error
	RemoveRole(ctx context.Context, guildID, userID, roleID string) error
}

type VerificationService interface {
	Verify(ctx context.Context, guildID, userID string) error
	Restrict(ctx context.Context, guildID, userID string) error
}
