package session

import (
	"context"
	"net/http"
	"sync"
)

// CookieName holds the session id.
const CookieName = "tu_session"

type contextKey struct{}

// lazy is the per-request session slot. The session is only created, and its
// cookie set, when a handler first needs to write to it.
type lazy struct {
	store  *Store
	w      http.ResponseWriter
	secure bool

	mu sync.Mutex
	id string
}

// IDFromContext returns the request's session id, or "" when the browser has
// no live session yet.
func IDFromContext(ctx context.Context) string {
	l, ok := ctx.Value(contextKey{}).(*lazy)
	if !ok {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.id
}

// Ensure returns the request's session id, creating the session and setting
// its cookie on first use. It must be called before the response header is
// written. Outside Middleware it returns "".
func Ensure(ctx context.Context) string {
	l, ok := ctx.Value(contextKey{}).(*lazy)
	if !ok {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.id != "" && l.store.Valid(l.id) {
		return l.id
	}
	l.id = l.store.Create()
	http.SetCookie(l.w, &http.Cookie{
		Name:     CookieName,
		Value:    l.id,
		Path:     "/",
		MaxAge:   int(l.store.ttl.Seconds()),
		HttpOnly: true,
		Secure:   l.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return l.id
}

// Middleware resolves the session cookie into the request context. Unknown or
// expired cookies are ignored; no session is created until Ensure is called.
func (s *Store) Middleware(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := &lazy{store: s, w: w, secure: secure}
			if cookie, err := r.Cookie(CookieName); err == nil && s.Valid(cookie.Value) {
				l.id = cookie.Value
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, l)))
		})
	}
}
