package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auth "github.com/Meekemma/userAuthentication"
)

type testIdentity struct {
	id        string
	email     string
	firstName string
	lastName  string
	verified  bool
}

func (t testIdentity) ID() string        { return t.id }
func (t testIdentity) Email() string     { return t.email }
func (t testIdentity) FirstName() string { return t.firstName }
func (t testIdentity) LastName() string  { return t.lastName }
func (t testIdentity) FullName() string  { return t.firstName + " " + t.lastName }
func (t testIdentity) Verified() bool    { return t.verified }

func newTestTokenService() *auth.TokenServiceImpl {
	return auth.NewTokenService(
		[]byte("test-signing-key"),
		1,
		24,
		"test-issuer",
		jwt.ClaimStrings{"test-audience"},
		nil,
	)
}

func newTestIdentity() testIdentity {
	return testIdentity{
		id:        "8d7e8faa-4f4b-41af-8e25-0e0f3d62f9bc",
		email:     "ada@example.com",
		firstName: "Ada",
		lastName:  "Lovelace",
		verified:  true,
	}
}

func TestGeneratePair(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.GeneratePair(newTestIdentity())
	require.NoError(t, err)

	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)
}

func TestValidateAccessToken(t *testing.T) {
	svc := newTestTokenService()
	identity := newTestIdentity()

	pair, err := svc.GeneratePair(identity)
	require.NoError(t, err)

	claims, err := svc.Validate(pair.Access)
	require.NoError(t, err)

	assert.Equal(t, identity.id, claims.UserID())
	assert.Equal(t, identity.id, claims.Subject())
	assert.Equal(t, identity.email, claims.Email())
	assert.Equal(t, identity.firstName, claims.FirstName())
	assert.Equal(t, identity.lastName, claims.LastName())
	assert.True(t, claims.Verified())
	assert.Equal(t, auth.TokenUseAccess, claims.TokenUse())
}

func TestValidateRejectsRefreshToken(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.GeneratePair(newTestIdentity())
	require.NoError(t, err)

	_, err = svc.Validate(pair.Refresh)
	assert.Error(t, err)
}

func TestValidateRefresh(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.GeneratePair(newTestIdentity())
	require.NoError(t, err)

	claims, err := svc.ValidateRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, auth.TokenUseRefresh, claims.TokenUse())

	// access tokens must not be accepted for refresh
	_, err = svc.ValidateRefresh(pair.Access)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestTokenService()
	now := time.Now()

	signed, err := svc.SignClaims(&auth.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "user-1",
			Audience:  jwt.ClaimStrings{"test-audience"},
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		Use: auth.TokenUseAccess,
	})
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.Error(t, err)
	assert.True(t, auth.IsTokenExpiredError(err))
}

func TestValidateMalformedToken(t *testing.T) {
	svc := newTestTokenService()

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "not-a-token"},
		{"Empty", ""},
		{"Truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token)
			assert.Error(t, err)
			assert.True(t, auth.IsMalformedError(err))
		})
	}
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	svc := newTestTokenService()
	other := auth.NewTokenService(
		[]byte("some-other-key"),
		1,
		24,
		"test-issuer",
		jwt.ClaimStrings{"test-audience"},
		nil,
	)

	pair, err := other.GeneratePair(newTestIdentity())
	require.NoError(t, err)

	_, err = svc.Validate(pair.Access)
	assert.Error(t, err)
}

func TestTokenPairJSONFieldNames(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.GeneratePair(newTestIdentity())
	require.NoError(t, err)

	parsed := &auth.JWTClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(pair.Access, parsed)
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", parsed.EmailAddr)
	assert.Equal(t, "Ada", parsed.GivenName)
	assert.Equal(t, "Lovelace", parsed.FamilyName)
	assert.True(t, parsed.IsVerified)
	assert.NotEmpty(t, parsed.RegisteredClaims.ID)
}
