package utils // package utils provides helpers for session token creation and verification

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrBadToken is returned by ParseToken for any token that cannot be
// accepted: bad signature, wrong algorithm, malformed input or expiry.
// Callers do not need to distinguish between those cases.
var ErrBadToken = errors.New("invalid token")

// AccessToken represents a signed JWT session token along with its expiry.
// The Token field contains the serialized JWT string sent to clients in the
// Authorization header on subsequent requests.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// Claims is the session token payload: a signed assertion of the user's
// email plus the registered expiry/issued-at claims.  Nothing else is
// encoded; there is no server-side session state behind a token.
type Claims struct {
    Email string `json:"email"`
    jwt.RegisteredClaims
}

// NewAccessToken builds and signs an HS256 JWT asserting the given email.
// ttlMin controls the validity window in minutes (the portal issues
// one-hour tokens).  Tokens are stateless: issuing has no side effects.
func NewAccessToken(secret, email string, ttlMin int) (AccessToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    c := Claims{
        Email: email,
        RegisteredClaims: jwt.RegisteredClaims{
            ExpiresAt: jwt.NewNumericDate(exp),
            IssuedAt:  jwt.NewNumericDate(now),
        },
    }
    signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseToken verifies a serialized token against the signing secret and
// returns its claims.  Expired, malformed or foreign-algorithm tokens all
// fail; the embedded email is only trustworthy when the error is nil.
func ParseToken(raw, secret string) (*Claims, error) {
    tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
        // block alg confusion
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrBadToken
        }
        return []byte(secret), nil
    })
    if err != nil {
        return nil, err
    }
    c, ok := tok.Claims.(*Claims)
    if !ok || !tok.Valid {
        return nil, ErrBadToken
    }
    return c, nil
}
