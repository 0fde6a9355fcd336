package store

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cesargomez89/mixcrate/internal/domain"
)

func (db *DB) CreateSong(song *domain.Song) error {
	if song.CreatedAt.IsZero() {
		song.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO songs (title, artist, duration, audio_file, playlist_id, created_at)
	VALUES (:title, :artist, :duration, :audio_file, :playlist_id, :created_at) RETURNING id`

	rows, err := db.NamedQuery(query, song)
	if err != nil {
		return fmt.Errorf("failed to create song (named query): %w", err)
	}
	defer rows.Close() //nolint:errcheck // deferred cleanup

	if rows.Next() {
		if err := rows.Scan(&song.ID); err != nil {
			return fmt.Errorf("failed to scan song id: %w", err)
		}
	} else if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating returning rows: %w", err)
	}

	return nil
}

func (db *DB) GetSongByID(id int64) (*domain.Song, error) {
	query := `SELECT * FROM songs WHERE id = ?`

	var song domain.Song
	err := db.Get(&song, query, id)
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// ListSongsByPlaylist returns a playlist's songs in insertion order.
func (db *DB) ListSongsByPlaylist(playlistID int64) ([]*domain.Song, error) {
	query := `SELECT * FROM songs WHERE playlist_id = ? ORDER BY id ASC`
	return selectSongs(db, query, playlistID)
}

// ListSongs returns every song row, insertion order.
func (db *DB) ListSongs() ([]*domain.Song, error) {
	query := `SELECT * FROM songs ORDER BY id ASC`
	return selectSongs(db, query)
}

// DeleteSong removes a song row and reports how many rows matched.
func (db *DB) DeleteSong(id int64) (int64, error) {
	result, err := db.Exec("DELETE FROM songs WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteSongsByPlaylist bulk-deletes a playlist's songs and returns the count.
func (db *DB) DeleteSongsByPlaylist(playlistID int64) (int64, error) {
	result, err := db.Exec("DELETE FROM songs WHERE playlist_id = ?", playlistID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (db *DB) ClearSongs() error {
	_, err := db.Exec("DELETE FROM songs")
	return err
}

func selectSongs(q sqlx.Queryer, query string, args ...interface{}) ([]*domain.Song, error) {
	var songs []*domain.Song
	err := sqlx.Select(q, &songs, query, args...)
	return songs, err
}
