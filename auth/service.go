package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/ripple-go/apperror"
	"github.com/user/ripple-go/config"
)

// AuthService implements registration, login, and session tokens.
type AuthService struct {
	store Store
	cfg   config.AuthConfig
	log   *logrus.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(store Store, cfg config.AuthConfig, log *logrus.Logger) *AuthService {
	return &AuthService{store: store, cfg: cfg, log: log}
}

// Claims is the session token payload.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Register creates a new account. The email check happens before the
// insert so the duplicate case answers with the published message; the
// unique constraint still backs it up against a concurrent insert.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	existing, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("User already exist.", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Name:           req.Name,
		Username:       req.Username,
		Email:          strings.ToLower(req.Email),
		HashedPassword: string(hashed),
	}
	created, err := s.store.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"userId": created.ID, "username": created.Username}).Info("account created")
	return created, nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password fail with the same message so the response does not
// reveal which factor was wrong.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperror.NewAuthError("Incorrect email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, "", apperror.NewAuthError("Incorrect email or password", nil)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken signs a session token for the given user id.
func (s *AuthService) IssueToken(userID int64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "ripple",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.TokenSecret))
	if err != nil {
		return "", apperror.NewInternalError("failed to sign token", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a session token string.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.TokenSecret), nil
	})
	if err != nil {
		return nil, apperror.NewAuthError("invalid token", err)
	}
	if !token.Valid {
		return nil, apperror.NewAuthError("invalid token", errors.New("token is invalid"))
	}
	if claims.UserID == 0 {
		return nil, apperror.NewAuthError("invalid token", errors.New("userId claim is missing"))
	}
	return claims, nil
}

// TokenDuration exposes the configured session lifetime so the login
// handler can align the cookie expiry with the token expiry.
func (s *AuthService) TokenDuration() time.Duration {
	return s.cfg.TokenDuration
}
