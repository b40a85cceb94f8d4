// Package token issues and validates the signed access tokens that protect
// mutating routes. Every token carries a fresh jti so a single session can be
// revoked before its expiry.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/devportfolio/portfolio-api/internal/core/domain"
	"github.com/devportfolio/portfolio-api/internal/core/ports"
)

// Issuer signs and validates HS256 JWTs carrying sub, iat, exp, and jti claims.
type Issuer struct {
	secret   []byte
	ttl      time.Duration
	registry ports.RevocationRegistry
	clock    ports.Clock
}

// NewIssuer builds an Issuer. TTL defaults to 24h when non-positive; clock
// defaults to UTC wall time.
func NewIssuer(secret string, ttl time.Duration, registry ports.RevocationRegistry, clock ports.Clock) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, registry: registry, clock: clock}
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token bound to subjectID and returns it with its jti.
func (i *Issuer) Issue(subjectID string) (string, string, error) {
	now := i.clock()
	jti := uuid.NewString()

	claims := jwt.MapClaims{
		"sub": subjectID,
		"jti": jti,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign token: %w", err)
	}
	return signed, jti, nil
}

// Validate parses raw, checks signature and expiry, and consults the
// revocation registry. It returns the subject id and jti on success. Expired,
// malformed, badly signed, and revoked tokens all surface
// domain.ErrUnauthorized.
func (i *Issuer) Validate(ctx context.Context, raw string) (string, string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", "", domain.ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	jti, _ := claims["jti"].(string)
	if sub == "" || jti == "" {
		return "", "", domain.ErrUnauthorized
	}

	revoked, err := i.registry.IsRevoked(ctx, jti)
	if err != nil {
		return "", "", fmt.Errorf("revocation check: %w", err)
	}
	if revoked {
		return "", "", domain.ErrUnauthorized
	}

	return sub, jti, nil
}
