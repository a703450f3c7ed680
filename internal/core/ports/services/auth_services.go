package services

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/dto"
)

// AuthSvc authenticates till operators.
type AuthSvc interface {
	// Login checks the operator PIN and issues an access token.
	// Unknown operators and wrong PINs both fail with apperrors.ErrUnauthorized.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
