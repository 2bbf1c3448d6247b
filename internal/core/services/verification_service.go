package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/verifybot/internal/core/domain"
	"github.com/vncsmyrnk/verifybot/internal/core/ports"
)

type verificationService struct {
	roles          ports.RoleManager
	restrictedRole string
	verifiedRole   string
}

func NewVerificationService(roles ports.RoleManager, restrictedRole, verifiedRole string) ports.VerificationService {
	return &verificationService{
		roles:          roles,
		restrictedRole: restrictedRole,
		verifiedRole:   verifiedRole,
	}
}

// Verify swaps the restricted role for the verified one. Both mutations are
// always attempted so a failed removal still grants access.
func (s *verificationService) Verify(ctx context.Context, guildID, userID string) error {
	if userID == "" {
		return domain.ErrInvalidUser
	}

	var errs []error
	if err := s.roles.RemoveRole(ctx, guildID, userID, s.restrictedRole); err != nil {
		errs = append(errs, fmt.Errorf("remove restricted role: %w", err))
	}
	if err := s.roles.AddRole(ctx, guildID, userID, s.verifiedRole); err != nil {
		errs = append(errs, fmt.Errorf("add verified role: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrRoleUpdate, errors.Join(errs...))
	}
	return nil
}

func (s *verificationService) Restrict(ctx context.Context, guildID, userID string) error {
	if userID == "" {
		return domain.ErrInvalidUser
	}
	if err := s.roles.AddRole(ctx, guildID, userID, s.restrictedRole); err != nil {
		return fmt.Errorf("%w: add restricted role: %w", domain.ErrRoleUpdate, err)
	}
	return nil
}
