package processor

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"

	"img2pdf/pkg/imgutil"
)

// ErrUnsupportedFormat marks files whose container format cannot be turned
// into a page.
var ErrUnsupportedFormat = errors.New("unsupported image format")

type decodedImage struct {
	kind   imgutil.Kind
	width  int
	height int
	img    image.Image
}

// decodeImage sniffs, measures and decodes the file at path.
func decodeImage(path string) (decodedImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return decodedImage{}, err
	}
	defer file.Close()

	kind, err := imgutil.SniffReader(file)
	if err != nil {
		return decodedImage{}, fmt.Errorf("read header: %w", err)
	}
	if !kind.Supported() {
		return decodedImage{kind: kind}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return decodedImage{}, err
	}
	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return decodedImage{kind: kind}, fmt.Errorf("read dimensions: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return decodedImage{kind: kind}, fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return decodedImage{}, err
	}
	img, err := imaging.Decode(file)
	if err != nil {
		return decodedImage{kind: kind}, fmt.Errorf("decode: %w", err)
	}

	return decodedImage{
		kind:   kind,
		width:  cfg.Width,
		height: cfg.Height,
		img:    img,
	}, nil
}

// encodeJPEG writes img to path as a JPEG of the given quality.
func encodeJPEG(img image.Image, path string, quality int) error {
	return imaging.Save(img, path, imaging.JPEGQuality(quality))
}
