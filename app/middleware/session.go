package middleware

import (
	"context"
	"net/http"
	"sync"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/session"
	"github.com/jaiswaranil8387/itsm-ticket-management/global"
)

// Sessions loads the request's session into the context and persists it
// back to the store. The save runs right before the first response byte
// goes out, so a redirect target always finds the stored session.
type Sessions struct{ Manager *session.Manager }

type sessionSaver struct {
	http.ResponseWriter
	once sync.Once
	save func()
}

func (w *sessionSaver) WriteHeader(code int) {
	w.once.Do(w.save)
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionSaver) Write(b []byte) (int, error) {
	w.once.Do(w.save)
	return w.ResponseWriter.Write(b)
}

func (s *Sessions) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.Manager.Load(r)

		saveCtx := context.WithoutCancel(r.Context())
		sw := &sessionSaver{ResponseWriter: w, save: func() {
			// Untouched sessions are never persisted or cookied;
			// an anonymous page view leaves nothing behind.
			if !sess.Dirty() {
				return
			}
			// The cookie goes out here, after the handler ran, so
			// a login that rotated the id signs the new id.
			if sess.IsNew() {
				cookie, err := s.Manager.Cookie(sess)
				if err != nil {
					global.Logger.Error().Err(err).Msg("sign session cookie")
					return
				}
				http.SetCookie(w, cookie)
			}
			if old := sess.StaleID(); old != "" {
				if err := s.Manager.Store.Delete(saveCtx, old); err != nil {
					global.Logger.Error().Err(err).Str("session_id", old).Msg("delete stale session")
				}
			}
			if err := s.Manager.Save(saveCtx, sess); err != nil {
				global.Logger.Error().Err(err).Str("session_id", sess.ID).Msg("save session")
			}
		}}

		ctx := session.NewContext(r.Context(), sess)
		next.ServeHTTP(sw, r.WithContext(ctx))
		sw.once.Do(sw.save)
	})
}
