package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"quickhaul/internal/entities"
)

var ErrMalformedClaims = errors.New("malformed session claims")

// claims: jti - id сессии, sub - id аккаунта.
type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type JWTIssuer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewJWTIssuer(secret []byte, issuer string) *JWTIssuer {
	return &JWTIssuer{
		secret: secret,
		issuer: issuer,
		now:    time.Now,
	}
}

func (i *JWTIssuer) Issue(session entities.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   session.AccountID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(i.now()),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
		Role: session.Role.String(),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (i *JWTIssuer) Parse(token string) (*entities.Caller, error) {
	parsed := &claims{}

	_, err := jwt.ParseWithClaims(
		token,
		parsed,
		func(*jwt.Token) (any, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, err
	}

	if parsed.ID == "" || parsed.Subject == "" {
		return nil, ErrMalformedClaims
	}

	return &entities.Caller{
		AccountID: parsed.Subject,
		Role:      entities.AccountRole(parsed.Role),
		SessionID: parsed.ID,
	}, nil
}
