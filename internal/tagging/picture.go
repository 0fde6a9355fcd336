package tagging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/go-flac/flacpicture"
	flac "github.com/go-flac/go-flac"

	"github.com/cesargomez89/mixcrate/internal/constants"
)

// ErrNoPicture reports that a file carries no embedded cover art.
var ErrNoPicture = errors.New("no embedded picture")

// Picture extracts embedded cover art from the audio file at path and
// returns the image bytes with their MIME type.
func Picture(path string) ([]byte, string, error) {
	if strings.ToLower(filepath.Ext(path)) == constants.ExtFLAC {
		return flacPicture(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return nil, "", ErrNoPicture
		}
		return nil, "", fmt.Errorf("failed to read tags: %w", err)
	}

	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, "", ErrNoPicture
	}

	contentType := pic.MIMEType
	if contentType == "" {
		contentType = constants.MimeTypeJPEG
	}
	return pic.Data, contentType, nil
}

func flacPicture(path string) ([]byte, string, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	for _, block := range f.Meta {
		if block.Type != flac.Picture {
			continue
		}
		pic, err := flacpicture.ParseFromMetaDataBlock(*block)
		if err != nil {
			continue
		}
		if len(pic.ImageData) == 0 {
			continue
		}
		contentType := pic.MIME
		if contentType == "" {
			contentType = constants.MimeTypeJPEG
		}
		return pic.ImageData, contentType, nil
	}
	return nil, "", ErrNoPicture
}
