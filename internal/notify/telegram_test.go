package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/door-monitor/internal/config"
)

// telegramSettings returns a complete channel configuration for tests.
func telegramSettings() config.TelegramConfig {
	return config.TelegramConfig{
		Enabled: true,
		Token:   "2345:TEsttoKEN",
		ChatID:  "345678",
	}
}

// TestTelegramSend verifies the bot API request path and form body.
func TestTelegramSend(t *testing.T) {
	t.Parallel()

	var (
		gotPath string
		gotForm url.Values
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		gotForm, err = url.ParseQuery(string(body))
		require.NoError(t, err)

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tg := NewTelegram(telegramSettings(), WithTelegramEndpoint(srv.URL))
	require.Equal(t, "telegram", tg.Name())

	err := tg.Send(context.Background(), "Door is now open")
	require.NoError(t, err)
	require.Equal(t, "/bot2345:TEsttoKEN/sendMessage", gotPath)
	require.Equal(t, "345678", gotForm.Get("chat_id"))
	require.Equal(t, "Door is now open", gotForm.Get("text"))
}

// TestTelegramSend_HTTPError surfaces non-success API responses as errors.
func TestTelegramSend_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	tg := NewTelegram(telegramSettings(), WithTelegramEndpoint(srv.URL))

	err := tg.Send(context.Background(), "alert")
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}
