// Package app holds the playlist/song service: input validation, the
// upload-and-enrich write path and cascading delete.
package app

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"

	"github.com/cesargomez89/mixcrate/internal/blob"
	"github.com/cesargomez89/mixcrate/internal/config"
	"github.com/cesargomez89/mixcrate/internal/constants"
	"github.com/cesargomez89/mixcrate/internal/domain"
	"github.com/cesargomez89/mixcrate/internal/logger"
	"github.com/cesargomez89/mixcrate/internal/store"
	"github.com/cesargomez89/mixcrate/internal/tagging"
)

// Library orchestrates the record store, the blob store and the metadata
// extractor. All handles are injected; Library owns no global state.
type Library struct {
	db    *store.DB
	blobs *blob.Store
	cfg   *config.Config
	log   *logger.Logger

	probe func(path string) (*tagging.Metadata, error)
}

func NewLibrary(db *store.DB, blobs *blob.Store, cfg *config.Config, log *logger.Logger) *Library {
	return &Library{
		db:    db,
		blobs: blobs,
		cfg:   cfg,
		log:   log.WithComponent("library"),
		probe: tagging.Probe,
	}
}

// CreatePlaylist inserts a new playlist with a server-assigned id and
// creation timestamp.
func (l *Library) CreatePlaylist(name, creator string) (*domain.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.Validationf("playlist name is required")
	}

	pl := &domain.Playlist{
		Name:    strings.TrimSpace(name),
		Creator: strings.TrimSpace(creator),
	}
	if err := l.db.CreatePlaylist(pl); err != nil {
		return nil, &domain.StorageError{Op: "create playlist", Err: err}
	}

	l.log.Info("playlist created", "playlist_id", pl.ID, "name", pl.Name)
	return pl, nil
}

// ListPlaylists returns all playlists newest-created-first.
func (l *Library) ListPlaylists() ([]*domain.Playlist, error) {
	playlists, err := l.db.ListPlaylists()
	if err != nil {
		return nil, &domain.StorageError{Op: "list playlists", Err: err}
	}
	if playlists == nil {
		playlists = []*domain.Playlist{}
	}
	return playlists, nil
}

// GetPlaylistWithSongs returns a playlist plus its songs in insertion order.
func (l *Library) GetPlaylistWithSongs(id int64) (*domain.PlaylistWithSongs, error) {
	pl, err := l.db.GetPlaylistByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "get playlist", Err: err}
	}

	songs, err := l.db.ListSongsByPlaylist(id)
	if err != nil {
		return nil, &domain.StorageError{Op: "list songs", Err: err}
	}
	if songs == nil {
		songs = []*domain.Song{}
	}

	return &domain.PlaylistWithSongs{Playlist: pl, Songs: songs}, nil
}

// AddSong runs the upload-and-enrich write path: validate, store the blob,
// extract metadata from the stored blob, insert the song row. The write is
// two-phase: if extraction or the row insert fails, the stored blob is
// deleted so no orphan blob survives the failed operation.
func (l *Library) AddSong(playlistID int64, data []byte, originalName, declaredMime string) (*domain.Song, error) {
	if len(data) == 0 {
		return nil, domain.Validationf("no audio file supplied")
	}
	if err := validateAudioUpload(originalName, declaredMime); err != nil {
		return nil, err
	}
	if int64(len(data)) > l.cfg.MaxUploadBytes {
		return nil, &domain.PayloadTooLargeError{Size: int64(len(data)), Limit: l.cfg.MaxUploadBytes}
	}

	if l.cfg.RequirePlaylist {
		if _, err := l.db.GetPlaylistByID(playlistID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, domain.ErrNotFound
			}
			return nil, &domain.StorageError{Op: "get playlist", Err: err}
		}
	}

	path, err := l.blobs.Store(data, originalName)
	if err != nil {
		return nil, &domain.StorageError{Op: "store blob", Err: err}
	}

	// Extraction runs against the stored blob, not the upload buffer.
	meta, err := l.probe(l.blobs.LocalPath(path))
	if err != nil {
		l.discardBlob(path)
		return nil, &domain.ExtractionError{Path: path, Err: err}
	}

	song := &domain.Song{
		Title:      meta.Title,
		Artist:     meta.Artist,
		Duration:   domain.FormatDuration(meta.Duration),
		AudioFile:  path,
		PlaylistID: playlistID,
	}
	if song.Title == "" {
		song.Title = strings.TrimSuffix(originalName, filepath.Ext(originalName))
	}
	if song.Artist == "" {
		song.Artist = constants.UnknownArtist
	}

	if err := l.db.CreateSong(song); err != nil {
		l.discardBlob(path)
		return nil, &domain.StorageError{Op: "create song", Err: err}
	}

	l.log.WithSong(song.ID, song.Title).Info("song added",
		"playlist_id", playlistID, "duration", song.Duration)
	return song, nil
}

// DeletePlaylist cascades: the playlist row goes first, then each song's
// blob (best-effort), then the song rows in bulk.
func (l *Library) DeletePlaylist(id int64) error {
	deleted, err := l.db.DeletePlaylist(id)
	if err != nil {
		return &domain.StorageError{Op: "delete playlist", Err: err}
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}

	songs, err := l.db.ListSongsByPlaylist(id)
	if err != nil {
		return &domain.StorageError{Op: "list songs", Err: err}
	}

	for _, song := range songs {
		if song.AudioFile == "" {
			continue
		}
		if err := l.blobs.Delete(song.AudioFile); err != nil {
			// Cleanup is best-effort; remaining songs still get deleted.
			l.log.WithPlaylist(id).Warn("failed to delete blob",
				"audio_file", song.AudioFile, "error", err)
		}
	}

	count, err := l.db.DeleteSongsByPlaylist(id)
	if err != nil {
		return &domain.StorageError{Op: "delete songs", Err: err}
	}

	l.log.WithPlaylist(id).Info("playlist deleted", "songs_deleted", count)
	return nil
}

// DeleteSong removes one song's blob, then its row.
func (l *Library) DeleteSong(id int64) error {
	song, err := l.db.GetSongByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return &domain.StorageError{Op: "get song", Err: err}
	}

	if song.AudioFile != "" {
		if err := l.blobs.Delete(song.AudioFile); err != nil {
			return &domain.StorageError{Op: "delete blob", Err: err}
		}
	}

	if _, err := l.db.DeleteSong(id); err != nil {
		return &domain.StorageError{Op: "delete song", Err: err}
	}

	l.log.WithSong(id, song.Title).Info("song deleted")
	return nil
}

// SongCover returns the embedded cover art of a song's blob.
func (l *Library) SongCover(id int64) ([]byte, string, error) {
	song, err := l.db.GetSongByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", &domain.StorageError{Op: "get song", Err: err}
	}

	data, mime, err := tagging.Picture(l.blobs.LocalPath(song.AudioFile))
	if err != nil {
		if errors.Is(err, tagging.ErrNoPicture) {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", &domain.ExtractionError{Path: song.AudioFile, Err: err}
	}
	return data, mime, nil
}

// ClearAll empties both collections and the blob directory. Administrative
// operation.
func (l *Library) ClearAll() error {
	if err := l.db.ClearSongs(); err != nil {
		return &domain.StorageError{Op: "clear songs", Err: err}
	}
	if err := l.db.ClearPlaylists(); err != nil {
		return &domain.StorageError{Op: "clear playlists", Err: err}
	}
	if err := l.blobs.Clear(); err != nil {
		return &domain.StorageError{Op: "clear blobs", Err: err}
	}

	l.log.Info("all playlists, songs and blobs cleared")
	return nil
}

// validateAudioUpload checks both the file extension and the declared MIME
// type against the audio allow-list before any bytes are persisted.
func validateAudioUpload(originalName, declaredMime string) error {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !constants.AllowedAudioExtensions[ext] {
		return domain.Validationf("file extension %q is not an allowed audio format", ext)
	}
	if !strings.HasPrefix(strings.ToLower(declaredMime), constants.AudioMimePrefix) {
		return domain.Validationf("content type %q is not an audio type", declaredMime)
	}
	return nil
}

func (l *Library) discardBlob(path string) {
	if err := l.blobs.Delete(path); err != nil {
		l.log.Warn("failed to discard blob after write failure",
			"audio_file", path, "error", err)
	}
}
