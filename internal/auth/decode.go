package auth

import (
	"encoding/json"
	"time"

	"github.com/lestrrat-go/jwx/v3"
	"github.com/lestrrat-go/jwx/v3/jws"

	"github.com/mrhaji1999/vandapay-sub001/internal/errors"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

// TokenClaims is the subset of bearer-token payload claims
// this client consults. The signature is NOT verified here ;
// the token is server-issued and server-validated, claims are
// used only as a role-resolution fallback and for display.
type TokenClaims struct {
	Iss   string   `json:"iss,omitempty"`
	Iat   int64    `json:"iat,omitempty"`
	Exp   int64    `json:"exp,omitempty"`
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`
	Data  struct {
		User struct {
			Id    json.Number `json:"id,omitempty"`
			Role  string      `json:"role,omitempty"`
			Roles []string    `json:"roles,omitempty"`
		} `json:"user,omitempty"`
	} `json:"data,omitempty"`
}

// IssuedAt decodes the [iat] claim.
func (c *TokenClaims) IssuedAt() time.Time {
	return model.ClaimsTime.Date(c.Iat)
}

// ExpiresAt decodes the [exp] claim.
func (c *TokenClaims) ExpiresAt() time.Time {
	return model.ClaimsTime.Date(c.Exp)
}

var ErrTokenMalformed = errors.Unauthorized(
	errors.Id("token_malformed"),
	errors.Message("wallet: malformed bearer token"),
)

// DecodeClaims extracts the payload claims of a JWT compact token
// without verifying its signature.
func DecodeClaims(token string) (*TokenClaims, error) {
	// Accept: JWT compact !
	// Format;JWS:  base64:{protected;header}.base64:{payload;jwt}.base64:signature
	compact := []byte(token)

	// JWTs are almost always JWS signed
	ok := (jwx.GuessFormat(compact) == jwx.JWS)
	if !ok {
		// Supposed to be NOT a JWT compact token form !
		return nil, ErrTokenMalformed
	}

	message, err := jws.Parse(
		compact,
		jws.WithCompact(),
	)

	if err != nil {
		return nil, ErrTokenMalformed
	}

	claims := new(TokenClaims)
	if err = json.Unmarshal(message.Payload(), claims); err != nil {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// DecodeRole resolves a role from bearer-token claims, in precedence:
//
//	role ; roles[0] ; data.user.role ; data.user.roles[0]
//
// Unknown role values are skipped. A malformed token yields ("", false)
// and never raises past the caller.
func DecodeRole(token string) (role model.Role, ok bool) {
	claims, err := DecodeClaims(token)
	if err != nil {
		return "", false
	}

	lookup := []string{claims.Role}
	lookup = append(lookup, claims.Roles...)
	lookup = append(lookup, claims.Data.User.Role)
	lookup = append(lookup, claims.Data.User.Roles...)

	for _, raw := range lookup {
		if role, ok = model.ParseRole(raw); ok {
			return // role, true
		}
	}
	return "", false
}
