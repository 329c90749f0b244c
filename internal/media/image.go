package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const thumbMaxSide = 480

// sniffImage reports whether data decodes as a supported image
// (jpeg, png or webp; chai2010/webp registers the format on import).
func sniffImage(data []byte) bool {
	_, _, err := image.DecodeConfig(bytes.NewReader(data))
	return err == nil
}

// thumbnailWebP downscales data to at most thumbMaxSide on its longer
// edge and re-encodes it as webp.
func thumbnailWebP(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > h {
		if w > thumbMaxSide {
			h = h * thumbMaxSide / w
			w = thumbMaxSide
		}
	} else {
		if h > thumbMaxSide {
			w = w * thumbMaxSide / h
			h = thumbMaxSide
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
