package utils

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ParseBearerToken extracts the token value from a raw "Authorization"
// header of the form "<scheme> <token>". Returns an error if the header
// cannot be split into two parts or the token part is empty.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// CheckJWTStructure verifies that tokenString is structurally a JWT
// (three base64 segments with a decodable header and claims).
//
// The gateway forwards caller tokens to upstream opaquely: upstream owns
// signature verification and expiry. This check only weeds out values that
// cannot possibly be a token before a network round trip is spent on them,
// so it deliberately uses an unverified parse.
func CheckJWTStructure(tokenString string) error {
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	return err
}
