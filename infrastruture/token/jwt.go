package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-guard/service/i"
	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrUnexpectedAlg  = errors.New("unexpected signing method")
	ErrIssuerMismatch = errors.New("token issuer mismatch")
)

// JwtService signs and verifies HS256 tokens for API clients.
// Implements i.Tokenizer.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a JWT service that signs with secretKey and stamps issuer.
func NewJwtService(secretKey, issuer string) i.Tokenizer {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Generate creates a JWT carrying claims plus "iss", "iat" and "exp".
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	now := time.Now().UTC()
	jwtClaims := jwt.MapClaims{}
	for key, val := range claims {
		jwtClaims[key] = val
	}
	jwtClaims["iss"] = s.issuer
	jwtClaims["iat"] = now.Unix()
	jwtClaims["exp"] = now.Add(expTime).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning the claims if valid and issued by this service.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.signingKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrIssuerMismatch
	}

	return claims, nil
}

// signingKey returns the key for token validation, rejecting non-HMAC tokens.
func (s *JwtService) signingKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnexpectedAlg
	}
	return []byte(s.secretKey), nil
}
