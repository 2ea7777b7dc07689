package auth

import (
	"html/template"
	"net/http"

	"github.com/dataserve/dataserve/pkg/actor"
	"github.com/dataserve/dataserve/pkg/flash"
)

const invalidDurationMessage = "Invalid expire duration"

type createTokenData struct {
	Actor    actor.Actor
	Error    string
	Token    string
	Messages []flash.Message
}

type logoutData struct {
	Label    string
	Messages []flash.Message
}

var createTokenTemplate = template.Must(template.New("create_token").Parse(`<!DOCTYPE html>
<title>Create an API token</title>
{{range .Messages}}<p class="message-{{.Level}}">{{.Text}}</p>
{{end}}<h1>Create an API token</h1>
<p>This token will allow API access with the same abilities as <strong>{{.Actor.Label}}</strong></p>
{{if .Error}}<p class="message-error">{{.Error}}</p>
{{end}}{{if .Token}}<p>Your API token. It will not be shown again.</p>
<input type="text" class="copyable" readonly value="{{.Token}}">
{{end}}<form action="/-/create-token" method="post">
  <label>Expires
    <select name="expire_type">
      <option value="">Never</option>
      <option value="minutes">Minutes</option>
      <option value="hours">Hours</option>
      <option value="days">Days</option>
    </select>
  </label>
  <input type="text" name="expire_duration">
  <input type="submit" value="Create token">
</form>
`))

var logoutTemplate = template.Must(template.New("logout").Parse(`<!DOCTYPE html>
<title>Log out</title>
{{range .Messages}}<p class="message-{{.Level}}">{{.Text}}</p>
{{end}}<p>You are logged in as <strong>{{.Label}}</strong></p>
<form action="/-/logout" method="post">
  <input type="submit" value="Log out">
</form>
`))

func (h *handlers) renderCreateToken(w http.ResponseWriter, r *http.Request, data createTokenData) {
	data.Messages = h.flash.Pop(w, r)
	h.execute(w, createTokenTemplate, data)
}

func (h *handlers) renderLogout(w http.ResponseWriter, r *http.Request, data logoutData) {
	data.Messages = h.flash.Pop(w, r)
	h.execute(w, logoutTemplate, data)
}

func (h *handlers) execute(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.log.Error("render "+tmpl.Name(), "error", err)
	}
}
