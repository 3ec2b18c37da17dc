package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pet-lost-and-found/internal/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Claims es el payload del token: solo el id del usuario como subject,
// más los claims registrados (exp, iat).
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Tokens emite y verifica tokens firmados con la clave simétrica del proceso.
type Tokens struct {
	cfg config.AuthConfig
	now func() time.Time
}

func NewTokens(cfg config.AuthConfig) *Tokens {
	return &Tokens{
		cfg: cfg,
		now: time.Now,
	}
}

// Issue firma un token HS256 con vencimiento y el userID como subject.
func (t *Tokens) Issue(userID int64) (string, error) {
	now := t.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.TokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(t.cfg.JWTKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify valida firma, vencimiento y claims; devuelve los claims decodificados.
func (t *Tokens) Verify(tokenString string) (Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(t.cfg.JWTKey), nil
	}, jwt.WithTimeFunc(func() time.Time { return t.now() }))
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	if !token.Valid || claims.UserID <= 0 {
		return Claims{}, ErrInvalidToken
	}
	return *claims, nil
}
