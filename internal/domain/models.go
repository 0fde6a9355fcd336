package domain

import (
	"fmt"
	"time"
)

// Playlist is the parent entity grouping uploaded songs.
type Playlist struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Creator   string    `json:"creator" db:"creator"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Song is one uploaded audio track. Title, Artist and Duration are filled
// from extracted tag metadata at creation time and never recomputed;
// AudioFile is the public path of the stored blob.
type Song struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Artist     string    `json:"artist" db:"artist"`
	Duration   string    `json:"duration" db:"duration"`
	AudioFile  string    `json:"audio_file" db:"audio_file"`
	PlaylistID int64     `json:"playlist_id" db:"playlist_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// PlaylistWithSongs is the detail view returned for a single playlist.
type PlaylistWithSongs struct {
	Playlist *Playlist `json:"playlist"`
	Songs    []*Song   `json:"songs"`
}

// FormatDuration renders a track length in seconds as m:ss with the seconds
// component zero-padded. Unknown durations (0) render as "0:00".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
