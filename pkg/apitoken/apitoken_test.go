package apitoken_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataserve/dataserve/pkg/actor"
	"github.com/dataserve/dataserve/pkg/apitoken"
	"github.com/dataserve/dataserve/pkg/signer"
)

const testSecret = "this-is-a-very-long-secret-key-32-chars-long"

func TestExpiry(t *testing.T) {
	t.Parallel()
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name     string
		req      apitoken.ExpiryRequest
		wantSecs int64 // 0 means no expiry
		wantErr  bool
	}{
		{"no expiry", apitoken.ExpiryRequest{}, 0, false},
		{"no expiry ignores duration", apitoken.ExpiryRequest{Duration: "10"}, 0, false},
		{"unknown unit", apitoken.ExpiryRequest{Type: "x"}, 0, true},
		{"missing duration", apitoken.ExpiryRequest{Type: "minutes"}, 0, true},
		{"non-integer duration", apitoken.ExpiryRequest{Type: "minutes", Duration: "x"}, 0, true},
		{"negative duration", apitoken.ExpiryRequest{Type: "minutes", Duration: "-1"}, 0, true},
		{"zero duration", apitoken.ExpiryRequest{Type: "minutes", Duration: "0"}, 0, true},
		{"ten minutes", apitoken.ExpiryRequest{Type: "minutes", Duration: "10"}, 600, false},
		{"ten hours", apitoken.ExpiryRequest{Type: "hours", Duration: "10"}, 10 * 60 * 60, false},
		{"three days", apitoken.ExpiryRequest{Type: "days", Duration: "3"}, 3 * 24 * 60 * 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.req.Expiry(now)
			if tt.wantErr {
				assert.ErrorIs(t, err, apitoken.ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			if tt.wantSecs == 0 {
				assert.True(t, got.IsZero())
			} else {
				assert.Equal(t, now.Unix()+tt.wantSecs, got.Unix())
			}
		})
	}
}

func TestIssue(t *testing.T) {
	t.Parallel()
	s, err := signer.New(testSecret)
	require.NoError(t, err)
	issuer := apitoken.NewIssuer(s)
	now := time.Now()

	t.Run("unlimited token", func(t *testing.T) {
		t.Parallel()
		tok, err := issuer.Issue("test", time.Time{})
		require.NoError(t, err)
		require.True(t, len(tok) > len(actor.TokenPrefix))
		assert.Equal(t, actor.TokenPrefix, tok[:len(actor.TokenPrefix)])

		var payload map[string]any
		require.NoError(t, s.Unsign(tok[len(actor.TokenPrefix):], actor.NamespaceToken, &payload))
		assert.Equal(t, map[string]any{"a": "test", "e": nil}, payload)
	})

	t.Run("expiring token resolves until expiry", func(t *testing.T) {
		t.Parallel()
		tok, err := issuer.Issue("test", now.Add(10*time.Minute))
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, s.Unsign(tok[len(actor.TokenPrefix):], actor.NamespaceToken, &payload))

		a := actor.DecodeToken(payload, now)
		require.NotNil(t, a)
		assert.Equal(t, "test", a.ID())
		assert.True(t, a.FromToken())

		assert.Nil(t, actor.DecodeToken(payload, now.Add(11*time.Minute)))
	})
}
