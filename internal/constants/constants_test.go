package constants

import "testing"

func TestDefaultValues(t *testing.T) {
	if DefaultPort != "8080" {
		t.Errorf("Expected DefaultPort to be '8080', got '%s'", DefaultPort)
	}

	if DefaultDBPath != "mixcrate.db" {
		t.Errorf("Expected DefaultDBPath to be 'mixcrate.db', got '%s'", DefaultDBPath)
	}

	if DefaultMaxUploadBytes != 10*1024*1024 {
		t.Errorf("Expected DefaultMaxUploadBytes to be 10 MiB, got %d", DefaultMaxUploadBytes)
	}
}

func TestAllowedAudioExtensions(t *testing.T) {
	allowed := []string{ExtMP3, ExtWAV, ExtOGG, ExtM4A, ExtFLAC}
	for _, ext := range allowed {
		if !AllowedAudioExtensions[ext] {
			t.Errorf("Expected %s to be allowed", ext)
		}
	}

	for _, ext := range []string{".pdf", ".exe", ".txt", ""} {
		if AllowedAudioExtensions[ext] {
			t.Errorf("Expected %s to be rejected", ext)
		}
	}
}

func TestUploadsURLPrefix(t *testing.T) {
	if UploadsURLPrefix != "/uploads/" {
		t.Errorf("Expected UploadsURLPrefix to be '/uploads/', got '%s'", UploadsURLPrefix)
	}
}
