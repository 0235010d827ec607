package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName — cookie с подписанным идентификатором сессии.
// Пользователь один, аккаунтов нет: cookie выдаётся при первой загрузке списка
// и отсекает сторонние запросы к мутирующим ручкам.
const SessionCookieName = "wishkeeper_session"

// sessionTTL — срок жизни сессионной cookie.
const sessionTTL = 30 * 24 * time.Hour

type contextKey string

const sessionContextKey contextKey = "session_id"

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SetSessionCookie подписывает идентификатор сессии и ставит cookie.
func SetSessionCookie(w http.ResponseWriter, sessionID, secret string) error {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(sessionTTL / time.Second),
	})
	return nil
}

// WithAuth проверяет сессионную cookie и кладёт идентификатор сессии в контекст.
// Невалидная или отсутствующая cookie запрос не блокирует: решение принимает хендлер.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(SessionCookieName); err == nil {
				var claims sessionClaims
				token, err := jwt.ParseWithClaims(c.Value, &claims, func(t *jwt.Token) (any, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
					}
					return []byte(secret), nil
				})
				if err == nil && token.Valid && claims.SessionID != "" {
					ctx := context.WithValue(r.Context(), sessionContextKey, claims.SessionID)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext возвращает идентификатор сессии, если cookie была валидна.
func GetSessionFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(sessionContextKey).(string)
	return sid, ok && sid != ""
}
