package store

import (
	"fmt"
	"time"

	"github.com/cesargomez89/mixcrate/internal/domain"
)

func (db *DB) CreatePlaylist(pl *domain.Playlist) error {
	if pl.CreatedAt.IsZero() {
		pl.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO playlists (name, creator, created_at)
	VALUES (:name, :creator, :created_at) RETURNING id`

	rows, err := db.NamedQuery(query, pl)
	if err != nil {
		return fmt.Errorf("failed to create playlist (named query): %w", err)
	}
	defer rows.Close() //nolint:errcheck // deferred cleanup

	if rows.Next() {
		if err := rows.Scan(&pl.ID); err != nil {
			return fmt.Errorf("failed to scan playlist id: %w", err)
		}
	} else if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating returning rows: %w", err)
	}

	return nil
}

func (db *DB) GetPlaylistByID(id int64) (*domain.Playlist, error) {
	query := `SELECT * FROM playlists WHERE id = ?`

	var pl domain.Playlist
	err := db.Get(&pl, query, id)
	if err != nil {
		return nil, err
	}
	return &pl, nil
}

// ListPlaylists returns all playlists newest-created-first.
func (db *DB) ListPlaylists() ([]*domain.Playlist, error) {
	query := `SELECT * FROM playlists ORDER BY created_at DESC, id DESC`

	var playlists []*domain.Playlist
	err := db.Select(&playlists, query)
	return playlists, err
}

// DeletePlaylist removes a playlist row and reports how many rows matched.
func (db *DB) DeletePlaylist(id int64) (int64, error) {
	result, err := db.Exec("DELETE FROM playlists WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (db *DB) ClearPlaylists() error {
	_, err := db.Exec("DELETE FROM playlists")
	return err
}
