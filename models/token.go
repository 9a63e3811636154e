package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an issued or parsed access token.
//
// It doubles as the claims container passed to jwt.ParseWithClaims: the
// registered claims carry the subject (user id) and expiry, and Role carries
// the authorization level the user had when the token was issued.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Role is a private claim ("role").
	Role Role `json:"role,omitempty"`

	// SignedString is the compact JWS form sent to clients.
	SignedString string `json:"-"`

	// UserID caches the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting user id from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting user id from token to int64: %w", err)
	}

	return userID, nil
}

// String implements [fmt.Stringer] and returns the compact JWS form.
func (t *Token) String() string {
	return t.SignedString
}
