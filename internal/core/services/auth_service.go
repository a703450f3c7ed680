package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/SscSPs/pos_ledger_app/internal/platform/config"
	"github.com/SscSPs/pos_ledger_app/internal/utils"
)

// authService implements the AuthSvc interface against the configured operators.
type authService struct {
	BaseService
	operators map[string]string
	secret    string
	issuer    string
	expiry    time.Duration
}

// NewAuthService creates a new operator auth service.
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{
		operators: cfg.Operators,
		secret:    cfg.JWTSecret,
		issuer:    cfg.JWTIssuer,
		expiry:    cfg.JWTExpiryDuration,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	hash, ok := s.operators[req.OperatorID]
	if !ok || !utils.CheckPINHash(req.PIN, hash) {
		s.LogWarn(ctx, "Operator login failed", slog.String("operator_id", req.OperatorID))
		return nil, fmt.Errorf("%w: invalid operator or pin", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.GenerateJWT(req.OperatorID, s.secret, s.expiry, s.issuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign operator token", slog.String("operator_id", req.OperatorID))
		return nil, fmt.Errorf("%w: failed to issue token", apperrors.ErrInternal)
	}

	s.LogInfo(ctx, "Operator logged in", slog.String("operator_id", req.OperatorID))
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
