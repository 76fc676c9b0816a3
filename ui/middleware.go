package ui

import (
	"context"
	"net/http"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/session"
)

type contextKey string

const sessionContextKey contextKey = "dashboard-session"

const sessionCookieName = "dashboard_session"

// sessionMiddleware resumes the browser's session from its cookie, or starts
// a fresh one, and injects it into the request context.
func (a *App) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *session.Session

		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if id, err := core.ParseSessionID(cookie.Value); err == nil {
				sess = a.sessions.GetOrCreate(id)
			}
		}
		if sess == nil {
			sess = a.sessions.Create()
		}

		// Demo mode keeps every session pre-loaded with the sample table
		if a.demoTable != nil {
			if _, ok := sess.Dataset(); !ok {
				sess.SetDataset(a.demoTable)
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    sess.ID.String(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom extracts the session injected by the middleware
func sessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionContextKey).(*session.Session)
	return sess
}
