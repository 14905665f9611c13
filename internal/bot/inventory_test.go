package bot

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvmauto/partsbot/internal/dialog"
)

// testBot wires a Bot to a fake Telegram endpoint and records every
// sendMessage text.
func testBot(t *testing.T) (*Bot, func() []string) {
	t.Helper()

	var mu sync.Mutex
	var sent []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"partsbot"}}`))
			return
		}
		_ = r.ParseForm()
		if text := r.FormValue("text"); text != "" {
			mu.Lock()
			sent = append(sent, text)
			mu.Unlock()
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"chat":{"id":1}}}`))
	}))
	t.Cleanup(srv.Close)

	botAPI, err := tgbotapi.NewBotAPIWithAPIEndpoint("test-token", srv.URL+"/bot%s/%s")
	require.NoError(t, err)

	log := slog.New(slog.DiscardHandler)
	b := New(botAPI, log, nil, nil, nil, 18, time.Millisecond, time.UTC)
	return b, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), sent...)
	}
}

func TestCreateDialogRejectsBlankSKU(t *testing.T) {
	b, sent := testBot(t)
	st := &dialog.Item{State: dialog.StateInvNewSKU, Payload: dialog.Payload{"name": "Brake Pad"}}

	b.handleInventoryCreateText(context.Background(), 1, st, "")

	_, ok := st.Payload["sku"]
	assert.False(t, ok, "a blank SKU must not be stored")
	assert.Equal(t, dialog.StateInvNewSKU, st.State, "the dialog stays on the SKU step")
	msgs := sent()
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[0], "SKU cannot be blank")
}
