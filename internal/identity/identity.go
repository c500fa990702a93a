// Package identity resolves the caller of an API request from a signed
// bearer token.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

const (
	defaultIssuer   = "foxdeal"
	defaultTokenTTL = 30 * 24 * time.Hour
)

// ErrMissingSecret is returned when no signing secret is configured.
var ErrMissingSecret = errors.New("jwt secret is not set")

// Identity reports the authenticated caller. Absence is a normal outcome,
// not an error.
type Identity interface {
	CurrentUser(ctx context.Context) (domain.User, bool)
}

type userKey struct{}

// WithUser returns a context carrying u.
func WithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// FromContext returns the user stored by WithUser.
func FromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(domain.User)
	if !ok || u.ID == "" {
		return domain.User{}, false
	}
	return u, true
}

// Claims are the token claims. The subject is the user ID.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTIdentity issues and verifies HS256 tokens.
type JWTIdentity struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option configures JWTIdentity.
type Option func(*JWTIdentity)

// WithIssuer sets the expected and issued "iss" claim.
func WithIssuer(iss string) Option {
	return func(j *JWTIdentity) {
		if iss != "" {
			j.issuer = iss
		}
	}
}

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(d time.Duration) Option {
	return func(j *JWTIdentity) {
		if d > 0 {
			j.ttl = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(j *JWTIdentity) {
		j.now = now
	}
}

// NewJWTIdentity creates a verifier for tokens signed with secret.
func NewJWTIdentity(secret string, opts ...Option) (*JWTIdentity, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	j := &JWTIdentity{
		secret: []byte(secret),
		issuer: defaultIssuer,
		ttl:    defaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// Issue signs a token for u.
func (j *JWTIdentity) Issue(u domain.User) (string, error) {
	if u.ID == "" {
		return "", errors.New("user id is required")
	}
	now := j.now()
	claims := Claims{
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return token, nil
}

// Parse verifies token and returns its user.
func (j *JWTIdentity) Parse(token string) (domain.User, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("verifying token: %w", err)
	}
	if claims.Subject == "" {
		return domain.User{}, errors.New("verifying token: missing subject")
	}
	return domain.User{ID: claims.Subject, Email: claims.Email}, nil
}

// Authenticate resolves an Authorization header value. It reports false for
// a missing, malformed or invalid bearer token.
func (j *JWTIdentity) Authenticate(header string) (domain.User, bool) {
	token, ok := BearerToken(header)
	if !ok {
		return domain.User{}, false
	}
	u, err := j.Parse(token)
	if err != nil {
		return domain.User{}, false
	}
	return u, true
}

// CurrentUser returns the user the auth middleware stored on ctx.
func (*JWTIdentity) CurrentUser(ctx context.Context) (domain.User, bool) {
	return FromContext(ctx)
}

// BearerToken extracts the token from an "Authorization: Bearer" value.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Static is an Identity that always returns the same user. It serves
// single-user deployments with auth disabled.
type Static struct {
	User domain.User
}

// CurrentUser implements Identity.
func (s Static) CurrentUser(ctx context.Context) (domain.User, bool) {
	if u, ok := FromContext(ctx); ok {
		return u, true
	}
	return s.User, s.User.ID != ""
}
