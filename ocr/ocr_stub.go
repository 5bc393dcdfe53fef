//go:build !ocr

// Package ocr recognises text in images so scanned pages and screenshots
// can be read like any other source.
//
// This build has no OCR support: every call fails with ErrOCRNotEnabled.
// Rebuild with -tags ocr (Tesseract required) to enable it.
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Enabled reports whether OCR support was compiled in.
const Enabled = false

// Client is a placeholder that cannot be constructed.
type Client struct{}

func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is safe on a nil client.
func (c *Client) Close() error {
	return nil
}

func (c *Client) Recognize(image []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}
