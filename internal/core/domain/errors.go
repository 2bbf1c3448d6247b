package domain

import "errors"

var (
	ErrInvalidUser        = errors.New("invalid user identity")
	ErrPersistLedger      = errors.New("failed to persist ledger")
	ErrRoleUpdate         = errors.New("failed to update member roles")
	ErrPollMessageMissing = errors.New("poll message not resolved")
)
