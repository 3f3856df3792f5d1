package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	stddraw "image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// MaxPixels caps the declared size of images decoded for thumbnails.
const MaxPixels = 4096 * 4096

var (
	ErrNotDataURI    = errors.New("media: not a base64 data URI")
	ErrImageTooLarge = errors.New("media: image dimensions too large")
)

// EncodeDataURI wraps raw bytes in a data URI using the sniffed MIME type.
// No size or type restriction is applied.
func EncodeDataURI(raw []byte) string {
	mediaType := mimetype.Detect(raw).String()
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

// DecodeDataURI returns the payload and media type of a base64 data URI.
func DecodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", ErrNotDataURI
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return nil, "", ErrNotDataURI
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	return raw, strings.TrimSuffix(header, ";base64"), nil
}

// Thumbnail center-crops an image to a square and scales it to size×size JPEG.
func Thumbnail(raw []byte, size int) ([]byte, error) {
	img, err := decodeImage(raw)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	if side <= 0 {
		return nil, errors.New("media: invalid image dimensions")
	}

	crop := image.NewRGBA(image.Rect(0, 0, side, side))
	origin := image.Point{X: bounds.Min.X + (bounds.Dx()-side)/2, Y: bounds.Min.Y + (bounds.Dy()-side)/2}
	stddraw.Draw(crop, crop.Bounds(), img, origin, stddraw.Src)

	thumb := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(thumb, thumb.Bounds(), crop, crop.Bounds(), xdraw.Over, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ThumbnailDataURI shrinks an image data URI for list views.
func ThumbnailDataURI(uri string, size int) (string, error) {
	raw, _, err := DecodeDataURI(uri)
	if err != nil {
		return "", err
	}
	thumb, err := Thumbnail(raw, size)
	if err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(thumb), nil
}

// decodeImage reads the header first so an image declaring huge dimensions
// is refused before any pixel buffer is allocated.
func decodeImage(raw []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err == nil {
		if err := checkDimensions(cfg); err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		return img, err
	}

	webpCfg, webpErr := webp.DecodeConfig(bytes.NewReader(raw))
	if webpErr != nil {
		return nil, err
	}
	if err := checkDimensions(webpCfg); err != nil {
		return nil, err
	}
	return webp.Decode(bytes.NewReader(raw))
}

func checkDimensions(cfg image.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("media: invalid image dimensions")
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return ErrImageTooLarge
	}
	return nil
}
