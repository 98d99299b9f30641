package command

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "gopkg.in/telegram-bot-api.v4"
)

// UpdateHandler processes one update to completion, it reports its own failures
type UpdateHandler func(ctx context.Context, update tgbotapi.Update)

// NewWebhookRouter accepts updates on POST /{token}. Telegram is the only one who knows the token,
// so any other path is refused.
func NewWebhookRouter(token string, handle UpdateHandler, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/{token}", func(w http.ResponseWriter, r *http.Request) {
		if subtle.ConstantTimeCompare([]byte(chi.URLParam(r, "token")), []byte(token)) != 1 {
			logger.Warn("invalid bot token received, unauthorized", "remote", r.RemoteAddr)
			writeJSON(w, http.StatusForbidden, "Unauthorized")
			return
		}

		var update tgbotapi.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			logger.Warn("can't decode the update", "err", err)
			writeJSON(w, http.StatusBadRequest, "Bad update")
			return
		}

		// failures are logged by the handler, Telegram would only resend the same update
		handle(r.Context(), update)
		writeJSON(w, http.StatusOK, struct{}{})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
