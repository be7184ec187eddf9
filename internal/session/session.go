package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const cookieName = "miniblog_session"

// Session - состояние браузера: кто вошёл и какой язык выбран.
// Живёт в подписанной cookie, в приложении передаётся через контекст
// запроса, глобального состояния нет.
type Session struct {
	UserID   int
	Username string
	Lang     string
}

func (s Session) LoggedIn() bool {
	return s.UserID > 0
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Write подписывает сессию и кладёт её в cookie.
func (m *Manager) Write(w http.ResponseWriter, s Session) error {
	now := time.Now()

	claims := jwt.MapClaims{
		"userId":   s.UserID,
		"username": s.Username,
		"lang":     s.Lang,
		"jti":      uuid.New().String(),
		"iat":      now.Unix(),
		"exp":      now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("ошибка подписи сессии: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Read разбирает cookie запроса. Отсутствующая, просроченная или
// подделанная cookie даёт пустую (анонимную) сессию.
func (m *Manager) Read(r *http.Request) Session {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return Session{}
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}
	}

	var s Session
	if userID, ok := claims["userId"].(float64); ok {
		s.UserID = int(userID)
	}
	if username, ok := claims["username"].(string); ok {
		s.Username = username
	}
	if lang, ok := claims["lang"].(string); ok {
		s.Lang = lang
	}

	return s
}

// Clear сбрасывает cookie при выходе.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

type ctxKey struct{}

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) Session {
	s, _ := ctx.Value(ctxKey{}).(Session)
	return s
}
