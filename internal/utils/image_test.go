package utils

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestBoundImagePassthrough(t *testing.T) {
	data := encodePNG(t, 800, 600)

	got, err := BoundImage(data, "small.png", 1920, 1080)
	if err != nil {
		t.Fatalf("BoundImage: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("in-bounds image must be returned unchanged")
	}
}

func TestBoundImageDownscales(t *testing.T) {
	data := encodePNG(t, 3840, 1080)

	got, err := BoundImage(data, "wide.png", 1920, 1080)
	if err != nil {
		t.Fatalf("BoundImage: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(got))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() > 1920 || bounds.Dy() > 1080 {
		t.Errorf("resized to %dx%d, still out of bounds", bounds.Dx(), bounds.Dy())
	}
	// Aspect ratio is preserved, so the wide source pins the width.
	if bounds.Dx() != 1920 {
		t.Errorf("width %d, want 1920", bounds.Dx())
	}
}

func TestBoundImageRejectsGarbage(t *testing.T) {
	if _, err := BoundImage([]byte("not an image"), "x.png", 1920, 1080); err == nil {
		t.Fatal("expected a decode error")
	}
}
