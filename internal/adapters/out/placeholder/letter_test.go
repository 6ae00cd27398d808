// internal/adapters/out/placeholder/letter_test.go
package placeholder_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"radacycling/internal/adapters/out/placeholder"
)

const dataURIPrefix = "data:image/png;base64,"

func decodeTile(t *testing.T, uri string) (width, height int) {
	t.Helper()
	if !strings.HasPrefix(uri, dataURIPrefix) {
		t.Fatalf("uri %.40q... lacks PNG data-URI prefix", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, dataURIPrefix))
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("png decode: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestLetterPNGDataURIProducesTile(t *testing.T) {
	uri := placeholder.LetterPNGDataURI("Aero Jersey")
	w, h := decodeTile(t, uri)
	if w != 128 || h != 128 {
		t.Fatalf("tile is %dx%d, want 128x128", w, h)
	}
}

func TestLetterPNGDataURIUsesFirstLetter(t *testing.T) {
	if placeholder.LetterPNGDataURI("Aero") != placeholder.LetterPNGDataURI("apex") {
		t.Fatal("same first letter should render the same tile")
	}
	if placeholder.LetterPNGDataURI("Aero") == placeholder.LetterPNGDataURI("Bottle") {
		t.Fatal("different letters rendered identical tiles")
	}
	// Leading digits and punctuation are skipped.
	if placeholder.LetterPNGDataURI("2-pack Socks") != placeholder.LetterPNGDataURI("socks") {
		t.Fatal("non-letter prefix should be skipped")
	}
}

func TestLetterPNGDataURIFallbackLetter(t *testing.T) {
	// No usable letter falls back to the brand initial.
	if placeholder.LetterPNGDataURI("12345") != placeholder.LetterPNGDataURI("R") {
		t.Fatal("letterless name should fall back to R")
	}
	if placeholder.LetterPNGDataURI("") != placeholder.LetterPNGDataURI("R") {
		t.Fatal("empty name should fall back to R")
	}
}
