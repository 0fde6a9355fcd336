package httpapp

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/mixcrate/internal/domain"
)

func (h *Handler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.Library.ListPlaylists()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, playlists)
}

func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Creator string `json:"creator"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, domain.Validationf("invalid request body: %v", err))
		return
	}

	pl, err := h.Library.CreatePlaylist(req.Name, req.Creator)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, pl)
}

func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	detail, err := h.Library.GetPlaylistWithSongs(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.Library.DeletePlaylist(id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "playlist deleted"})
}

// UploadSong accepts a multipart form with a playlistId field and an
// audioFile part, and responds with the enriched song row.
func (h *Handler) UploadSong(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.writeError(w, domain.Validationf("invalid multipart form: %v", err))
		return
	}

	playlistID, err := strconv.ParseInt(r.FormValue("playlistId"), 10, 64)
	if err != nil {
		h.writeError(w, domain.Validationf("playlistId is required and must be numeric"))
		return
	}

	file, header, err := r.FormFile("audioFile")
	if err != nil {
		h.writeError(w, domain.Validationf("no audio file supplied"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, domain.Validationf("failed to read uploaded file: %v", err))
		return
	}

	song, err := h.Library.AddSong(playlistID, data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, song)
}

func (h *Handler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.Library.DeleteSong(id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "song deleted"})
}

func (h *Handler) SongCover(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	data, mime, err := h.Library.SongCover(id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.Error("failed to write cover response", "error", err)
	}
}

func (h *Handler) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Library.ClearAll(); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "all data cleared"})
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, domain.Validationf("invalid id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}
