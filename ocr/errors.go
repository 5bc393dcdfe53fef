//go:build ocr

package ocr

import "errors"

// ErrOCRNotEnabled is never returned by this build; it exists so callers
// can test for it regardless of build tags.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")
