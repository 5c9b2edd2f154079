package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
)

// Codec signs and verifies access tokens. Both issuing systems share one
// implementation because they share one signing secret; compromise of either
// issuer compromises both, which is why the secret is injected rather than
// read from process-global state.
type Codec interface {
	Alg() string
	Issuer() string
	Sign(Claims) (string, error)
	Verify(token string) (Claims, error)
}

// HS256Codec is the symmetric shared-secret codec. The algorithm identifier
// is pinned: a token presenting any other alg header fails verification
// before the signature is even checked.
type HS256Codec struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewHS256 builds a codec around the shared signing secret. Issuer is
// enforced on verify when non-empty. Leeway absorbs clock skew between the
// two issuing systems.
func NewHS256(secret []byte, issuer string, leeway time.Duration) (*HS256Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	return &HS256Codec{secret: secret, issuer: issuer, leeway: leeway}, nil
}

func (c *HS256Codec) Alg() string { return "HS256" }

func (c *HS256Codec) Issuer() string { return c.issuer }

func (c *HS256Codec) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *HS256Codec) Verify(raw string) (Claims, error) {
	var claims Claims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithLeeway(c.leeway),
		jwt.WithExpirationRequired(),
	)

	_, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if c.issuer != "" && claims.Issuer != c.issuer {
		return Claims{}, ErrIssuer
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrAlgMismatch
	default:
		return ErrMalformed
	}
}
