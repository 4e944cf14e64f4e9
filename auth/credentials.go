package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken is returned for malformed, tampered or expired tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// UserIDKey is the request-local key under which the auth guard stores the
// verified user id for handlers to read.
const UserIDKey = "user_id"

// Claims carries the authenticated user id inside a token.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// CredentialService hashes passwords and issues signed session tokens. The
// secret and token lifetime come from configuration at construction; nothing
// here reads the environment.
type CredentialService struct {
	secret []byte
	ttl    time.Duration
}

func NewCredentialService(secret string, ttl time.Duration) *CredentialService {
	return &CredentialService{secret: []byte(secret), ttl: ttl}
}

// HashPassword returns the salted bcrypt hash of password.
func (s *CredentialService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored hash.
func (s *CredentialService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs an HS256 token binding userID for the configured lifetime.
func (s *CredentialService) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken resolves a token back to the user id it was issued for.
func (s *CredentialService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
