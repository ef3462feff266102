package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"feed_digest/internal/config"
	"feed_digest/internal/domain"
)

const tenantContextKey = "tenantID"

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid bearer token")
	errMissingSub   = errors.New("token has no subject")
)

// TenantAuth verifies HS256 bearer tokens. The token subject is the tenant id.
type TenantAuth struct {
	secret []byte
	parser *jwt.Parser
	logger *slog.Logger
}

func NewTenantAuth(cfg config.AuthConfig, logger *slog.Logger) *TenantAuth {
	if cfg.TokenSecret == "" {
		logger.Warn("auth.token_secret not set, all API requests will be rejected")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &TenantAuth{
		secret: []byte(cfg.TokenSecret),
		parser: jwt.NewParser(opts...),
		logger: logger,
	}
}

// RequireTenant rejects requests without a valid token with 401.
func (a *TenantAuth) RequireTenant() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tenantID, err := a.authenticate(c.Request())
			if err != nil {
				a.logger.Debug("authentication failed", "error", err, "path", c.Path())
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set(tenantContextKey, tenantID)
			return next(c)
		}
	}
}

func (a *TenantAuth) authenticate(r *http.Request) (domain.TenantID, error) {
	header := r.Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", errMissingToken
	}
	if len(a.secret) == 0 {
		return "", fmt.Errorf("%w: token secret not configured", errInvalidToken)
	}

	var claims jwt.RegisteredClaims
	_, err := a.parser.ParseWithClaims(strings.TrimSpace(token), &claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", errMissingSub
	}

	return domain.TenantID(claims.Subject), nil
}

func tenantFrom(c echo.Context) (domain.TenantID, error) {
	tenantID, ok := c.Get(tenantContextKey).(domain.TenantID)
	if !ok || tenantID == "" {
		return "", domain.ErrUnauthenticated
	}
	return tenantID, nil
}
