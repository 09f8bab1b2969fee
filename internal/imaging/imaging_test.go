package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func fotoJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{180, 140, 60, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func fotoPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func dimensoes(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding prepared image: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestPrepararJPEG(t *testing.T) {
	data, err := Preparar(bytes.NewReader(fotoJPEG(100, 100)))
	if err != nil {
		t.Fatalf("Preparar JPEG: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty output")
	}
	w, h := dimensoes(t, data)
	if w != 100 || h != 100 {
		t.Errorf("small photo should keep its size, got %dx%d", w, h)
	}
}

func TestPrepararPNGBecomesJPEG(t *testing.T) {
	data, err := Preparar(bytes.NewReader(fotoPNG(50, 80)))
	if err != nil {
		t.Fatalf("Preparar PNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\xff\xd8")) {
		t.Error("expected JPEG output")
	}
}

func TestPrepararDownscales(t *testing.T) {
	data, err := Preparar(bytes.NewReader(fotoJPEG(2048, 1024)))
	if err != nil {
		t.Fatalf("Preparar: %v", err)
	}
	w, h := dimensoes(t, data)
	if w != LadoMaximo {
		t.Errorf("expected width %d, got %d", LadoMaximo, w)
	}
	if h != LadoMaximo/2 {
		t.Errorf("expected height %d (aspect preserved), got %d", LadoMaximo/2, h)
	}
}

func TestPrepararRejectsOtherFormats(t *testing.T) {
	_, err := Preparar(strings.NewReader("GIF89a not really an image"))
	if !errors.Is(err, ErrFormato) {
		t.Errorf("expected ErrFormato, got %v", err)
	}
}
