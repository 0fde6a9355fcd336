package httpapp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/mixcrate/internal/app"
	"github.com/cesargomez89/mixcrate/internal/domain"
	"github.com/cesargomez89/mixcrate/internal/logger"
)

type Handler struct {
	Library *app.Library
	Logger  *logger.Logger
}

func NewHandler(lib *app.Library, log *logger.Logger) *Handler {
	return &Handler{
		Library: lib,
		Logger:  log.WithComponent("http"),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/playlists", h.ListPlaylists)
		r.Post("/playlists", h.CreatePlaylist)
		r.Get("/playlists/{id}", h.GetPlaylist)
		r.Delete("/playlists/{id}", h.DeletePlaylist)

		r.Post("/songs", h.UploadSong)
		r.Delete("/songs/{id}", h.DeleteSong)
		r.Get("/songs/{id}/cover", h.SongCover)

		r.Delete("/clear-all", h.ClearAll)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP statuses. Every body is
// {"error": message}.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validationErr *domain.ValidationError
	var tooLargeErr *domain.PayloadTooLargeError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &tooLargeErr):
		status = http.StatusRequestEntityTooLarge
	}

	if status == http.StatusInternalServerError {
		h.Logger.Error("request failed", "error", err)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
