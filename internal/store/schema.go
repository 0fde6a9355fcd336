package store

// Schema holds the two collections. songs.playlist_id deliberately carries
// no FOREIGN KEY constraint: referential checking happens at the service
// layer so orphan tolerance stays a runtime configuration choice.
const Schema = `
CREATE TABLE IF NOT EXISTS playlists (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	creator TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS songs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	artist TEXT,
	duration TEXT,
	audio_file TEXT,
	playlist_id INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_songs_playlist_id ON songs(playlist_id);
`
