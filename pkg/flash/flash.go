package flash

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dataserve/dataserve/pkg/signer"
)

const (
	// CookieName carries pending flash messages between requests.
	CookieName = "ds_messages"

	// Namespace signs the messages cookie.
	Namespace = "messages"
)

// Level grades a message for display. The numeric values are part of the
// cookie wire format.
type Level int

const (
	LevelInfo    Level = 2
	LevelWarning Level = 3
	LevelError   Level = 4
)

// String names the level for display, e.g. as a CSS class suffix.
func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Message is a one-shot user-facing notice.
type Message struct {
	Text  string
	Level Level
}

// MarshalJSON encodes the message as a [text, level] pair.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{m.Text, int(m.Level)})
}

// UnmarshalJSON decodes a [text, level] pair.
func (m *Message) UnmarshalJSON(data []byte) error {
	var pair []any
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return ErrInvalidMessage
	}
	text, ok := pair[0].(string)
	if !ok {
		return ErrInvalidMessage
	}
	level, ok := pair[1].(float64)
	if !ok {
		return ErrInvalidMessage
	}
	m.Text = text
	m.Level = Level(level)
	return nil
}

// Store reads and writes the signed messages cookie. Messages survive
// exactly one round trip: Pop clears the cookie as it reads it.
type Store struct {
	signer *signer.Signer
	secure bool
}

func NewStore(s *signer.Signer) *Store {
	return &Store{signer: s}
}

// NewStoreWithSecurity returns a Store that marks its cookie Secure.
func NewStoreWithSecurity(s *signer.Signer, secure bool) *Store {
	return &Store{signer: s, secure: secure}
}

// Add appends a message to the pending set and re-signs the cookie. An
// unreadable existing cookie is discarded rather than surfaced.
func (st *Store) Add(w http.ResponseWriter, r *http.Request, text string, level Level) error {
	messages := st.peek(r)
	messages = append(messages, Message{Text: text, Level: level})

	envelope, err := st.signer.Sign(messages, Namespace)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    envelope,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   st.secure,
	})
	return nil
}

// Pop returns any pending messages and instructs the client to drop the
// cookie. Tampered or missing cookies yield no messages.
func (st *Store) Pop(w http.ResponseWriter, r *http.Request) []Message {
	messages := st.peek(r)
	if messages == nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   st.secure,
	})
	return messages
}

func (st *Store) peek(r *http.Request) []Message {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	var messages []Message
	if err := st.signer.Unsign(cookie.Value, Namespace, &messages); err != nil {
		return nil
	}
	return messages
}
