package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pricewatcher/config"
)

func TestTelegramEnabled(t *testing.T) {
	assert.True(t, NewTelegramNotifier(config.TelegramConfig{
		BotToken: "123:abc",
		ChatID:   "-100200300",
	}).Enabled())

	assert.False(t, NewTelegramNotifier(config.TelegramConfig{
		ChatID: "-100200300",
	}).Enabled())

	assert.False(t, NewTelegramNotifier(config.TelegramConfig{
		BotToken: "123:abc",
	}).Enabled())
}

func TestTelegramSend(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	n := NewTelegramNotifier(config.TelegramConfig{
		BotToken: "123:abc",
		ChatID:   "-100200300",
	})
	n.SetAPIBase(server.URL)

	err := n.Send(context.Background(), "Deal Alert!", "Laptop\n  amazon: ₹45999\n")
	assert.NoError(t, err)
	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, "-100200300", gotPayload["chat_id"])
	assert.Contains(t, gotPayload["text"], "Laptop")
}

func TestTelegramSendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	n := NewTelegramNotifier(config.TelegramConfig{
		BotToken: "bad-token",
		ChatID:   "-100200300",
	})
	n.SetAPIBase(server.URL)

	err := n.Send(context.Background(), "Deal Alert!", "body")
	assert.Error(t, err)
}

func TestTelegramSendDisabledIsNoOp(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	n := NewTelegramNotifier(config.TelegramConfig{})
	n.SetAPIBase(server.URL)

	err := n.Send(context.Background(), "Deal Alert!", "body")
	assert.NoError(t, err)
	assert.Zero(t, requests)
}
