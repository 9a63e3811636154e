package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-api/models"
)

func testUser() models.User {
	return models.User{ID: 123, Role: models.RoleAdmin}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testUser(), time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.NotNil(t, token.Token)
	assert.Equal(t, "test-issuer", token.Issuer)
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, models.RoleAdmin, token.Role)
	assert.Equal(t, int64(123), token.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testUser(), tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	user := models.User{ID: 456, Role: models.RoleNormal}
	gen, err := GenerateJWTToken("test-issuer", user, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(gen.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)

	assert.Equal(t, int64(456), parsed.UserID)
	assert.Equal(t, models.RoleNormal, parsed.Role)
	assert.True(t, parsed.Valid)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("real-issuer", testUser(), time.Hour, "key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("real-issuer", testUser(), -time.Second, "key")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		is     error
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "real-issuer", is: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: valid.SignedString, key: "key", issuer: "fake-issuer", is: jwt.ErrTokenInvalidIssuer},
		{name: "expired", token: expired.SignedString, key: "key", issuer: "real-issuer", is: jwt.ErrTokenExpired},
		{name: "malformed", token: "not.a.token", key: "key", issuer: "real-issuer", is: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "iss", Subject: "1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(raw, "key", "iss")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "iss", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(raw, "key", "iss")
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBearer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
