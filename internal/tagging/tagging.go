// Package tagging reads tag metadata (title, artist, duration) from stored
// audio blobs. Every field is best-effort: a parseable file with no tags
// yields zero values, a structurally broken file yields an error.
package tagging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"

	"github.com/cesargomez89/mixcrate/internal/constants"
)

// Metadata is the extraction result. Zero values mean "absent".
type Metadata struct {
	Title    string
	Artist   string
	Duration int // seconds
}

// Probe extracts tag metadata from the audio file at path, dispatching on
// the file extension.
func Probe(path string) (*Metadata, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case constants.ExtMP3:
		return probeMP3(path)
	case constants.ExtFLAC:
		return probeFLAC(path)
	case constants.ExtWAV:
		return probeWAV(path)
	case constants.ExtOGG, constants.ExtM4A:
		return probeGeneric(path)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

// probeMP3 reads ID3v2 frames for title/artist and estimates the duration
// from the first MPEG frame header.
func probeMP3(path string) (*Metadata, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read ID3 tag: %w", err)
	}
	defer t.Close()

	md := &Metadata{
		Title:  strings.TrimSpace(t.Title()),
		Artist: strings.TrimSpace(t.Artist()),
	}

	// Duration is an estimate; an MP3 with no recognizable frame keeps 0.
	md.Duration = estimateMP3Duration(path)
	return md, nil
}

// probeFLAC reads the mandatory StreamInfo block for the duration and any
// Vorbis comment block for title/artist.
func probeFLAC(path string) (*Metadata, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	md := &Metadata{}

	if info, err := f.GetStreamInfo(); err == nil && info.SampleRate > 0 {
		md.Duration = int(info.SampleCount / int64(info.SampleRate))
	}

	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			continue
		}
		if titles, err := cmt.Get(flacvorbis.FIELD_TITLE); err == nil && len(titles) > 0 {
			md.Title = titles[0]
		}
		if artists, err := cmt.Get(flacvorbis.FIELD_ARTIST); err == nil && len(artists) > 0 {
			md.Artist = artists[0]
		}
	}

	return md, nil
}

// probeWAV computes the duration from the RIFF fmt/data chunks. WAV files
// carry no tag metadata we recognize.
func probeWAV(path string) (*Metadata, error) {
	duration, err := wavDuration(path)
	if err != nil {
		return nil, err
	}
	return &Metadata{Duration: duration}, nil
}

// probeGeneric covers OGG and M4A through the format-agnostic reader. A file
// with no tags at all is not an extraction failure.
func probeGeneric(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return &Metadata{}, nil
		}
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	return &Metadata{
		Title:  strings.TrimSpace(m.Title()),
		Artist: strings.TrimSpace(m.Artist()),
	}, nil
}
