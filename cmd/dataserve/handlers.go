package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dataserve/dataserve/pkg/actor"
	"github.com/dataserve/dataserve/pkg/flash"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<title>dataserve</title>
{{range .Messages}}<p class="message-{{.Level}}">{{.Text}}</p>
{{end}}<h1>dataserve</h1>
{{if .Actor}}<p>Logged in as <strong>{{.Actor.Label}}</strong></p>
<form action="/-/logout" method="post">
  <input type="submit" value="Log out">
</form>
{{else}}<p>You are not logged in.</p>
{{end}}`))

// indexHandler renders the landing page: current identity plus any pending
// one-shot messages, which it consumes as it displays them.
func indexHandler(messages *flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, _ := actor.FromContext(r.Context())
		data := struct {
			Actor    actor.Actor
			Messages []flash.Message
		}{Actor: a, Messages: messages.Pop(w, r)}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTemplate.Execute(w, data); err != nil {
			slog.ErrorContext(r.Context(), "render index", slog.Any("error", err))
		}
	}
}

// requestLogger emits one structured record per request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
