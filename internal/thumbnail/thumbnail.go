// Package thumbnail is the pure resize capability used by the worker. It has
// no storage or catalog awareness: bytes in, resized bytes out.
package thumbnail

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Widths are the variant sizes generated for every uploaded image.
var Widths = []int{500, 250, 100}

const (
	errFailedDecodeImageFmt = "failed to decode image: %w"
	errFailedEncodeImageFmt = "failed to encode image: %w"
	errUnsupportedFormatFmt = "unsupported image format %q"
)

// Resize scales an image down to the target width, preserving aspect ratio
// and the source encoding.
func Resize(data []byte, width int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf(errFailedDecodeImageFmt, err)
	}

	outFormat, err := imaging.FormatFromExtension(format)
	if err != nil {
		return nil, fmt.Errorf(errUnsupportedFormatFmt, format)
	}

	resized := imaging.Resize(img, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, outFormat); err != nil {
		return nil, fmt.Errorf(errFailedEncodeImageFmt, err)
	}

	return buf.Bytes(), nil
}
