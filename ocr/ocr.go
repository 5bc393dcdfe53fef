//go:build ocr

// Package ocr recognises text in images so scanned pages and screenshots
// can be read like any other source.
//
// It wraps the Tesseract engine via gosseract and needs Tesseract and its
// headers installed (apt-get install libtesseract-dev, brew install tesseract).
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Enabled reports whether OCR support was compiled in.
const Enabled = true

// Client wraps a Tesseract session. Close it when done.
type Client struct {
	client *gosseract.Client
}

func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Recognize returns the text found in an encoded image (PNG, JPEG, TIFF).
func (c *Client) Recognize(image []byte) (string, error) {
	if err := c.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// SetLanguage selects Tesseract languages, "+" separated (e.g. "eng+deu").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}
