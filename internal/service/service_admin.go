package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/app-dashboard/internal/config"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/internal/utils"
	"github.com/MKhiriev/app-dashboard/models"
)

// adminService is the concrete implementation of AdminService.
// All state is read-only after construction.
type adminService struct {
	// access is AdminAccessDisabled when no password is configured.
	access config.AdminAccess

	// adminPassword is the configured password, plain or bcrypt-hashed.
	adminPassword string

	// secretKey signs session tokens and keys the HMAC used for the
	// constant-time password comparison.
	secretKey string

	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAdminService constructs an AdminService from the resolved app config.
func NewAdminService(cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		access:        cfg.AdminAccess,
		adminPassword: cfg.AdminPassword,
		secretKey:     cfg.SecretKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Authorize checks the credentials of an admin operation.
//
// Returns:
//   - ErrAdminDisabled if no admin password is configured, whatever was sent.
//   - nil if bearerToken is a valid session token.
//   - ErrMissingAdminPassword if password is nil (an invalid token falls
//     through to here).
//   - ErrWrongAdminPassword if password does not match.
func (a *adminService) Authorize(ctx context.Context, bearerToken string, password *string) error {
	if a.access == config.AdminAccessDisabled {
		return ErrAdminDisabled
	}

	if bearerToken != "" {
		if _, err := a.ParseToken(ctx, bearerToken); err == nil {
			return nil
		}
		logger.FromContext(ctx).Debug().Msg("session token rejected, checking password")
	}

	return a.checkPassword(ctx, password)
}

// CreateSession issues a signed session token once password is verified.
func (a *adminService) CreateSession(ctx context.Context, password *string) (models.Token, error) {
	if a.access == config.AdminAccessDisabled {
		return models.Token{}, ErrAdminDisabled
	}

	if err := a.checkPassword(ctx, password); err != nil {
		return models.Token{}, err
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.tokenDuration, a.secretKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	logger.FromContext(ctx).Info().Time("expires_at", token.ExpiresAt.Time).Msg("admin session created")
	return token, nil
}

// ParseToken validates a session token. Any failure (expired, wrong
// signature or issuer, malformed) is reported as ErrTokenIsExpiredOrInvalid.
func (a *adminService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.secretKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *adminService) checkPassword(ctx context.Context, password *string) error {
	if password == nil {
		return ErrMissingAdminPassword
	}

	if !utils.ComparePassword(*password, a.adminPassword, a.secretKey) {
		logger.FromContext(ctx).Warn().Msg("wrong admin password")
		return ErrWrongAdminPassword
	}

	return nil
}
