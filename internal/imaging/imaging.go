// Package imaging prepares uploaded artifact photos for the catalog's
// image directory: format validation by byte sniffing, downscaling of
// oversized photos and JPEG re-encoding.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// LadoMaximo is the maximum width or height of a stored photo, in pixels.
const LadoMaximo = 1024

// qualidadeJPEG is the compression quality for re-encoded photos.
const qualidadeJPEG = 82

// ErrFormato is returned when the upload is not a JPEG or PNG image.
var ErrFormato = errors.New("formato de imagem não suportado (apenas JPEG e PNG)")

// Preparar validates an uploaded photo, scales it down to LadoMaximo
// when needed and returns it re-encoded as JPEG. The input format is
// detected from the bytes, never from client headers.
func Preparar(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lendo imagem: %w", err)
	}

	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png":
	default:
		return nil, ErrFormato
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decodificando imagem: %w", err)
	}

	if maior(img) > LadoMaximo {
		img = reduzir(img)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: qualidadeJPEG}); err != nil {
		return nil, fmt.Errorf("codificando JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

func maior(img image.Image) int {
	b := img.Bounds()
	if b.Dx() > b.Dy() {
		return b.Dx()
	}
	return b.Dy()
}

// reduzir scales the image so its larger side becomes LadoMaximo,
// preserving aspect ratio, with Catmull-Rom interpolation.
func reduzir(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	escala := float64(LadoMaximo) / float64(maior(img))
	nw := max(int(float64(w)*escala), 1)
	nh := max(int(float64(h)*escala), 1)

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
