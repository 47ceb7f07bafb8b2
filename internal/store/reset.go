package store

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

const (
	defaultResetTTL = 2 * time.Minute
	resetSubject    = "reset-demo-data"
)

// ResetGuard issues single-use confirmation tokens for the destructive reset.
// Only the most recently issued token is accepted.
type ResetGuard struct {
	mu      sync.Mutex
	secret  []byte
	ttl     time.Duration
	clock   func() time.Time
	pending string
}

// NewResetGuard constructs a guard. A nil secret is replaced by random bytes,
// which invalidates outstanding tokens on restart.
func NewResetGuard(secret []byte, ttl time.Duration, clock func() time.Time) *ResetGuard {
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			secret = []byte(uuid.NewString())
		}
	}
	if ttl <= 0 {
		ttl = defaultResetTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return &ResetGuard{secret: secret, ttl: ttl, clock: clock}
}

// Issue signs a new token and makes it the only valid one.
func (g *ResetGuard) Issue() (string, time.Time, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	issuedAt := g.clock().UTC()
	expiresAt := issuedAt.Add(g.ttl)
	jti := uuid.NewString()
	claims := jwt.RegisteredClaims{
		ID:        jti,
		Subject:   resetSubject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	g.pending = jti
	return signed, expiresAt, nil
}

// Consume verifies token and retires it. Any failure returns ErrInvalidResetToken.
func (g *ResetGuard) Consume(token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.secret, nil
	}, jwt.WithTimeFunc(g.clock), jwt.WithSubject(resetSubject), jwt.WithExpirationRequired())
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInvalidResetToken.Code, appErrors.ErrInvalidResetToken.Status, appErrors.ErrInvalidResetToken.Message)
	}
	if !parsed.Valid || g.pending == "" || claims.ID != g.pending {
		return appErrors.ErrInvalidResetToken
	}
	g.pending = ""
	return nil
}

// RequestReset is the first step of a reset: it returns the token the caller
// must hand back to ConfirmReset before it expires.
func (s *Store) RequestReset() (string, time.Time, error) {
	return s.reset.Issue()
}

// ConfirmReset checks token and, when valid, replaces all data with the demo
// data set and persists. The session is kept.
func (s *Store) ConfirmReset(ctx context.Context, token string) error {
	if err := s.reset.Consume(token); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Info("resetting data to demo data set")
	s.reseed(ctx, "reset")
	return nil
}
