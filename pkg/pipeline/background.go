package pipeline

import (
	"bytes"
	"image"
	"os"

	// Registered background decoders. BMP and WebP come up in asset
	// pipelines often enough to be worth the imports.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/framefit/pkg/cache"
	"github.com/matzehuels/framefit/pkg/errors"
)

// loadBackground resolves the background image from the options, preferring
// a pre-decoded image, then raw bytes, then a file path. The returned hash
// is the content hash of the encoded bytes, used for sample cache keys; it
// is empty when only a decoded image was supplied (nothing stable to hash).
//
// No background at all is a valid configuration: sampling falls back to the
// documented gray default downstream.
func loadBackground(opts *Options) (image.Image, string, error) {
	if opts.BackgroundImage != nil {
		return opts.BackgroundImage, "", nil
	}

	data := opts.BackgroundData
	if data == nil && opts.Background != "" {
		var err error
		data, err = os.ReadFile(opts.Background)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "background image %s", opts.Background)
			}
			return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "read background image %s", opts.Background)
		}
	}
	if data == nil {
		return nil, "", nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeDecodeFailed, err, "decode background image")
	}

	return img, cache.Hash(data), nil
}
