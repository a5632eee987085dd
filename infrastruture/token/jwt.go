package token

import (
	"errors"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/dgrijalva/jwt-go"
)

var ErrInvalidToken = errors.New("invalid token")

// claims is the JWT payload: standard claims plus space-separated scopes.
type claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.StandardClaims
}

// JwtService handles JWT operations.
// Implements i.Tokenizer.
type JwtService struct {
	secretKey []byte
	issuer    string
	now       func() time.Time
}

// NewJwtService creates a new JWT Service signing with secretKey for issuer.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		now:       time.Now,
	}
}

// Generate creates a signed token for subject carrying scopes.
func (s *JwtService) Generate(subject string, scopes []string, expTime time.Duration) (string, error) {
	now := s.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Scope: strings.Join(scopes, " "),
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(expTime).Unix(),
		},
	})
	return token.SignedString(s.secretKey)
}

// Decode parses and validates a token issued by this service.
func (s *JwtService) Decode(tokenString string) (*i.Claims, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, s.getSigningKey)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if !c.VerifyIssuer(s.issuer, true) {
		return nil, ErrInvalidToken
	}

	return &i.Claims{
		Subject: c.Subject,
		Scopes:  strings.Fields(c.Scope),
	}, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return s.secretKey, nil
}
