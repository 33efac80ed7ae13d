// Package session implementa el token de sesión firmado que viaja en la
// cookie del navegador. El estado es por visitante (no global del proceso):
// el token solo lleva el username autenticado y su expiración.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims incluye los claims estándar más el username de la sesión.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Manager emite y valida tokens de sesión HS256. El secret se inyecta en la
// construcción (viene de la configuración, nunca de un global).
type Manager struct {
	secret string
	issuer string
	ttl    time.Duration
}

// NewManager construye el manager de sesión.
func NewManager(secret, issuer string, expMinutes int) *Manager {
	return &Manager{
		secret: secret,
		issuer: issuer,
		ttl:    time.Duration(expMinutes) * time.Minute,
	}
}

// Issue genera un token de sesión firmado para el usuario autenticado.
func (m *Manager) Issue(username string) (string, error) {
	if m.secret == "" {
		return "", fmt.Errorf("session: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    m.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Username: username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Parse valida el token y devuelve el username de la sesión.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func (m *Manager) Parse(tokenString string) (string, error) {
	if m.secret == "" {
		return "", fmt.Errorf("session: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	if claims.Username == "" {
		return "", fmt.Errorf("sesión sin username")
	}
	return claims.Username, nil
}

// TTL devuelve la duración de la sesión (para la expiración de la cookie).
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
