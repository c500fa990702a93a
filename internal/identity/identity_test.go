package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestIdentity(t *testing.T, opts ...Option) *JWTIdentity {
	t.Helper()
	base := []Option{WithClock(func() time.Time { return testNow })}
	j, err := NewJWTIdentity("s3cret-signing-key", append(base, opts...)...)
	require.NoError(t, err)
	return j
}

func TestNewJWTIdentity_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTIdentity("")
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestJWTIdentity_IssueAndParse(t *testing.T) {
	t.Parallel()

	j := newTestIdentity(t)
	token, err := j.Issue(domain.User{ID: "user-1", Email: "a@example.com"})
	require.NoError(t, err)

	u, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "user-1", Email: "a@example.com"}, u)

	_, err = j.Issue(domain.User{})
	require.Error(t, err)
}

func TestJWTIdentity_ParseRejects(t *testing.T) {
	t.Parallel()

	j := newTestIdentity(t, WithTokenTTL(time.Hour))
	valid, err := j.Issue(domain.User{ID: "user-1"})
	require.NoError(t, err)

	otherKey := newTestIdentity(t)
	otherKey.secret = []byte("another-key")
	forged, err := otherKey.Issue(domain.User{ID: "user-1"})
	require.NoError(t, err)

	otherIssuer, err := newTestIdentity(t, WithIssuer("someone-else")).Issue(domain.User{ID: "user-1"})
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", Issuer: defaultIssuer},
	}).SignedString(j.secret)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    defaultIssuer,
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	later := newTestIdentity(t, WithClock(func() time.Time { return testNow.Add(2 * time.Hour) }))

	tests := []struct {
		name  string
		ident *JWTIdentity
		token string
	}{
		{name: "garbage", ident: j, token: "not.a.token"},
		{name: "wrong key", ident: j, token: forged},
		{name: "wrong issuer", ident: j, token: otherIssuer},
		{name: "no expiry", ident: j, token: noExpiry},
		{name: "alg none", ident: j, token: noneAlg},
		{name: "expired", ident: later, token: valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.ident.Parse(tt.token)
			require.Error(t, err)
		})
	}
}

func TestJWTIdentity_Authenticate(t *testing.T) {
	t.Parallel()

	j := newTestIdentity(t)
	token, err := j.Issue(domain.User{ID: "user-7"})
	require.NoError(t, err)

	u, ok := j.Authenticate("Bearer " + token)
	require.True(t, ok)
	assert.Equal(t, "user-7", u.ID)

	_, ok = j.Authenticate("bearer " + token)
	assert.True(t, ok, "scheme is case-insensitive")

	for _, h := range []string{"", "Bearer", "Bearer ", "Basic dXNlcjpwYXNz", token} {
		_, ok := j.Authenticate(h)
		assert.False(t, ok, "header %q", h)
	}
}

func TestContextUser(t *testing.T) {
	t.Parallel()

	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithUser(context.Background(), domain.User{ID: "user-1"})
	u, ok := (&JWTIdentity{}).CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", u.ID)

	_, ok = FromContext(WithUser(context.Background(), domain.User{}))
	assert.False(t, ok, "empty user is not authenticated")
}

func TestStatic(t *testing.T) {
	t.Parallel()

	s := Static{User: domain.User{ID: "local"}}
	u, ok := s.CurrentUser(context.Background())
	require.True(t, ok)
	assert.Equal(t, "local", u.ID)

	u, ok = s.CurrentUser(WithUser(context.Background(), domain.User{ID: "user-2"}))
	require.True(t, ok)
	assert.Equal(t, "user-2", u.ID)

	_, ok = Static{}.CurrentUser(context.Background())
	assert.False(t, ok)
}
