package speedreading

import (
	"context"

	"github.com/grifflee/speedreading/ocr"
)

// ImageLoader extracts text from images with OCR. Without the "ocr" build
// tag it fails with ocr.ErrOCRNotEnabled.
type ImageLoader struct {
	lang string
}

// NewImageLoader returns a loader for the given Tesseract languages; empty
// means the engine default.
func NewImageLoader(lang string) *ImageLoader {
	return &ImageLoader{lang: lang}
}

func (l *ImageLoader) Load(ctx context.Context, src Source) (string, error) {
	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()

	if l.lang != "" {
		if err := client.SetLanguage(l.lang); err != nil {
			return "", err
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return client.Recognize(src.Data)
}
