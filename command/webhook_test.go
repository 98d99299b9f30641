package command

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	tgbotapi "gopkg.in/telegram-bot-api.v4"
)

const testToken = "123456:secret-token"

func TestWebhookDeliversUpdate(t *testing.T) {

	// Given:
	var received []tgbotapi.Update
	router := NewWebhookRouter(testToken, func(_ context.Context, update tgbotapi.Update) {
		received = append(received, update)
	}, nil)

	body := `{"update_id": 10, "message": {"message_id": 5, "from": {"id": 7, "first_name": "John"},
		"chat": {"id": 7, "type": "private"}, "date": 1600000000, "text": "London"}}`

	// When:
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/"+testToken, strings.NewReader(body)))

	// Then:
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{}\n", rec.Body.String())
	assert.Len(t, received, 1)
	assert.Equal(t, 10, received[0].UpdateID)
	assert.Equal(t, "London", received[0].Message.Text)
}

func TestWebhookRejectsWrongToken(t *testing.T) {

	// Given:
	called := false
	router := NewWebhookRouter(testToken, func(context.Context, tgbotapi.Update) {
		called = true
	}, nil)

	// When:
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/not-a-token", strings.NewReader(`{"update_id": 1}`)))

	// Then:
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
	assert.False(t, called)
}

func TestWebhookRejectsBrokenBody(t *testing.T) {

	// Given:
	called := false
	router := NewWebhookRouter(testToken, func(context.Context, tgbotapi.Update) {
		called = true
	}, nil)

	// When:
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/"+testToken, strings.NewReader(`{"update_id":`)))

	// Then:
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestWebhookHealthcheck(t *testing.T) {

	// Given:
	router := NewWebhookRouter(testToken, func(context.Context, tgbotapi.Update) {}, nil)

	// When:
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// Then:
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
