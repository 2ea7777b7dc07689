package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataserve/dataserve/pkg/flash"
	"github.com/dataserve/dataserve/pkg/signer"
)

const testSecret = "this-is-a-very-long-secret-key-32-chars-long"

func newStore(t *testing.T) (*flash.Store, *signer.Signer) {
	t.Helper()
	s, err := signer.New(testSecret)
	require.NoError(t, err)
	return flash.NewStore(s), s
}

func carryCookies(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 {
			r.AddCookie(c)
		}
	}
	return r
}

func TestAddPop(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t)

	w := httptest.NewRecorder()
	require.NoError(t, store.Add(w, httptest.NewRequest("GET", "/", nil), "You are now logged out", flash.LevelInfo))

	r := carryCookies(t, w)
	w2 := httptest.NewRecorder()
	messages := store.Pop(w2, r)
	require.Len(t, messages, 1)
	assert.Equal(t, "You are now logged out", messages[0].Text)
	assert.Equal(t, flash.LevelInfo, messages[0].Level)

	// Pop must clear the cookie.
	cookies := w2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, flash.CookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestAddAppendsToPending(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t)

	w1 := httptest.NewRecorder()
	require.NoError(t, store.Add(w1, httptest.NewRequest("GET", "/", nil), "first", flash.LevelInfo))

	w2 := httptest.NewRecorder()
	require.NoError(t, store.Add(w2, carryCookies(t, w1), "second", flash.LevelError))

	messages := store.Pop(httptest.NewRecorder(), carryCookies(t, w2))
	require.Len(t, messages, 2)
	assert.Equal(t, flash.Message{Text: "first", Level: flash.LevelInfo}, messages[0])
	assert.Equal(t, flash.Message{Text: "second", Level: flash.LevelError}, messages[1])
}

func TestPopNoCookie(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t)

	w := httptest.NewRecorder()
	assert.Nil(t, store.Pop(w, httptest.NewRequest("GET", "/", nil)))
	// Nothing to clear, so no Set-Cookie either.
	assert.Empty(t, w.Result().Cookies())
}

func TestPopTamperedCookie(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: flash.CookieName, Value: "not-a-signed-envelope"})
	assert.Nil(t, store.Pop(httptest.NewRecorder(), r))
}

func TestWireFormat(t *testing.T) {
	t.Parallel()
	store, s := newStore(t)

	w := httptest.NewRecorder()
	require.NoError(t, store.Add(w, httptest.NewRequest("GET", "/", nil), "You are now logged out", flash.LevelInfo))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	// The signed payload is an array of [text, level] pairs with info = 2.
	var raw []any
	require.NoError(t, s.Unsign(cookies[0].Value, flash.Namespace, &raw))
	assert.Equal(t, []any{[]any{"You are now logged out", 2.0}}, raw)
}
