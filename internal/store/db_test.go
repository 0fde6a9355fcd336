package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/cesargomez89/mixcrate/internal/domain"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	t.Cleanup(func() {
		if cErr := db.Close(); cErr != nil {
			t.Logf("db.Close error: %v", cErr)
		}
	})
	return db
}

func TestDB_Playlists(t *testing.T) {
	db := setupTestDB(t)

	pl := &domain.Playlist{
		Name:    "Road Trip",
		Creator: "DJ Nitin",
	}

	err := db.CreatePlaylist(pl)
	if err != nil {
		t.Fatalf("CreatePlaylist failed: %v", err)
	}
	if pl.ID == 0 {
		t.Error("Expected playlist ID to be set")
	}
	if pl.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	fetched, err := db.GetPlaylistByID(pl.ID)
	if err != nil {
		t.Fatalf("GetPlaylistByID failed: %v", err)
	}
	if fetched.Name != "Road Trip" {
		t.Errorf("Expected name %q, got %q", "Road Trip", fetched.Name)
	}
	if fetched.Creator != "DJ Nitin" {
		t.Errorf("Expected creator %q, got %q", "DJ Nitin", fetched.Creator)
	}

	if _, err := db.GetPlaylistByID(9999); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows for unknown id, got %v", err)
	}

	deleted, err := db.DeletePlaylist(pl.ID)
	if err != nil {
		t.Fatalf("DeletePlaylist failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 deleted row, got %d", deleted)
	}

	deleted, err = db.DeletePlaylist(pl.ID)
	if err != nil {
		t.Fatalf("Second DeletePlaylist failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("Expected 0 deleted rows on repeat delete, got %d", deleted)
	}
}

func TestDB_ListPlaylists_NewestFirst(t *testing.T) {
	db := setupTestDB(t)

	base := time.Now().UTC()
	names := []string{"First", "Second", "Third"}
	for i, name := range names {
		pl := &domain.Playlist{Name: name, CreatedAt: base.Add(time.Duration(i) * time.Second)}
		if err := db.CreatePlaylist(pl); err != nil {
			t.Fatalf("CreatePlaylist(%s) failed: %v", name, err)
		}
	}

	list, err := db.ListPlaylists()
	if err != nil {
		t.Fatalf("ListPlaylists failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 playlists, got %d", len(list))
	}
	if list[0].Name != "Third" || list[2].Name != "First" {
		t.Errorf("Expected newest-first order, got %s..%s", list[0].Name, list[2].Name)
	}
}

func TestDB_Songs(t *testing.T) {
	db := setupTestDB(t)

	pl := &domain.Playlist{Name: "Mix"}
	if err := db.CreatePlaylist(pl); err != nil {
		t.Fatalf("CreatePlaylist failed: %v", err)
	}

	song := &domain.Song{
		Title:      "silence",
		Artist:     "Unknown Artist",
		Duration:   "0:30",
		AudioFile:  "/uploads/123-abc.wav",
		PlaylistID: pl.ID,
	}
	if err := db.CreateSong(song); err != nil {
		t.Fatalf("CreateSong failed: %v", err)
	}
	if song.ID == 0 {
		t.Error("Expected song ID to be set")
	}

	fetched, err := db.GetSongByID(song.ID)
	if err != nil {
		t.Fatalf("GetSongByID failed: %v", err)
	}
	if fetched.Title != "silence" || fetched.Duration != "0:30" {
		t.Errorf("Unexpected song row: %+v", fetched)
	}
	if fetched.PlaylistID != pl.ID {
		t.Errorf("Expected playlist_id %d, got %d", pl.ID, fetched.PlaylistID)
	}

	second := &domain.Song{Title: "b-side", Artist: "Someone", Duration: "2:05", PlaylistID: pl.ID}
	if err := db.CreateSong(second); err != nil {
		t.Fatalf("CreateSong failed: %v", err)
	}

	songs, err := db.ListSongsByPlaylist(pl.ID)
	if err != nil {
		t.Fatalf("ListSongsByPlaylist failed: %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("Expected 2 songs, got %d", len(songs))
	}
	if songs[0].ID != song.ID || songs[1].ID != second.ID {
		t.Error("Expected songs in insertion order")
	}

	count, err := db.DeleteSongsByPlaylist(pl.ID)
	if err != nil {
		t.Fatalf("DeleteSongsByPlaylist failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 deleted songs, got %d", count)
	}

	if _, err := db.GetSongByID(song.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows after bulk delete, got %v", err)
	}
}

func TestDB_Clear(t *testing.T) {
	db := setupTestDB(t)

	pl := &domain.Playlist{Name: "Mix"}
	if err := db.CreatePlaylist(pl); err != nil {
		t.Fatalf("CreatePlaylist failed: %v", err)
	}
	if err := db.CreateSong(&domain.Song{Title: "t", PlaylistID: pl.ID}); err != nil {
		t.Fatalf("CreateSong failed: %v", err)
	}

	if err := db.ClearSongs(); err != nil {
		t.Fatalf("ClearSongs failed: %v", err)
	}
	if err := db.ClearPlaylists(); err != nil {
		t.Fatalf("ClearPlaylists failed: %v", err)
	}

	playlists, err := db.ListPlaylists()
	if err != nil {
		t.Fatalf("ListPlaylists failed: %v", err)
	}
	if len(playlists) != 0 {
		t.Errorf("Expected empty playlists, got %d", len(playlists))
	}
	songs, err := db.ListSongs()
	if err != nil {
		t.Fatalf("ListSongs failed: %v", err)
	}
	if len(songs) != 0 {
		t.Errorf("Expected empty songs, got %d", len(songs))
	}
}
