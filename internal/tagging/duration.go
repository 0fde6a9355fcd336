package tagging

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// estimateMP3Duration scans past any ID3v2 tag, finds the first MPEG audio
// frame header and estimates the track length from its bitrate, assuming
// constant bitrate over the remaining payload. Returns 0 when no frame is
// recognized.
func estimateMP3Duration(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}

	offset := id3v2TagSize(data)
	if offset >= len(data) {
		return 0
	}
	payload := data[offset:]

	for i := 0; i+4 <= len(payload); i++ {
		if payload[i] != 0xFF || payload[i+1]&0xE0 != 0xE0 {
			continue
		}
		bitrate := frameBitrate(payload[i+1], payload[i+2])
		if bitrate == 0 {
			continue
		}
		audioBytes := len(payload) - i
		return audioBytes * 8 / bitrate
	}
	return 0
}

// id3v2TagSize returns the byte length of a leading ID3v2 tag, 0 if absent.
// Tag layout: "ID3", version (2), flags (1), syncsafe 28-bit size (4).
func id3v2TagSize(data []byte) int {
	if len(data) < 10 || !bytes.Equal(data[:3], []byte("ID3")) {
		return 0
	}
	size := int(data[6]&0x7F)<<21 | int(data[7]&0x7F)<<14 | int(data[8]&0x7F)<<7 | int(data[9]&0x7F)
	return 10 + size
}

// Layer III bitrates in bits per second, indexed by the frame header's
// bitrate index. Index 0 is "free" and 15 is invalid; both map to 0.
var (
	bitratesV1L3 = [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320}
	bitratesV2L3 = [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160}
)

// frameBitrate decodes the bitrate in bits per second from the second and
// third bytes of an MPEG frame header. Only Layer III is handled.
func frameBitrate(b1, b2 byte) int {
	version := (b1 >> 3) & 0x03 // 3 = MPEG1, 2 = MPEG2, 0 = MPEG2.5
	layer := (b1 >> 1) & 0x03   // 1 = Layer III
	if layer != 1 {
		return 0
	}
	index := (b2 >> 4) & 0x0F
	if index == 0 || index == 15 {
		return 0
	}

	switch version {
	case 3:
		return bitratesV1L3[index] * 1000
	case 2, 0:
		return bitratesV2L3[index] * 1000
	default:
		return 0
	}
}

// wavDuration reads the RIFF fmt and data chunks and derives the play time
// as data size over byte rate.
func wavDuration(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var riff [12]byte
	if _, err := io.ReadFull(f, riff[:]); err != nil {
		return 0, fmt.Errorf("failed to read RIFF header: %w", err)
	}
	if !bytes.Equal(riff[:4], []byte("RIFF")) || !bytes.Equal(riff[8:12], []byte("WAVE")) {
		return 0, fmt.Errorf("not a RIFF/WAVE file")
	}

	var byteRate uint32
	var dataSize uint32

	// Walk chunks until both fmt and data have been seen.
	for {
		var header [8]byte
		if _, err := io.ReadFull(f, header[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return 0, fmt.Errorf("failed to read chunk header: %w", err)
		}
		size := binary.LittleEndian.Uint32(header[4:8])

		switch string(header[:4]) {
		case "fmt ":
			var fmtChunk [16]byte
			if _, err := io.ReadFull(f, fmtChunk[:]); err != nil {
				return 0, fmt.Errorf("failed to read fmt chunk: %w", err)
			}
			byteRate = binary.LittleEndian.Uint32(fmtChunk[8:12])
			if size > 16 {
				if _, err := f.Seek(int64(size-16), io.SeekCurrent); err != nil {
					return 0, err
				}
			}
		case "data":
			dataSize = size
			if _, err := f.Seek(int64(size), io.SeekCurrent); err != nil {
				return 0, err
			}
		default:
			if _, err := f.Seek(int64(size), io.SeekCurrent); err != nil {
				return 0, err
			}
		}

		// Chunks are word-aligned.
		if size%2 == 1 {
			if _, err := f.Seek(1, io.SeekCurrent); err != nil {
				return 0, err
			}
		}

		if byteRate > 0 && dataSize > 0 {
			break
		}
	}

	if byteRate == 0 {
		return 0, nil
	}
	return int(dataSize / byteRate), nil
}
