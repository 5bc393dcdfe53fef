package speedreading

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnavailable = errors.New("system clipboard unavailable")

// clipboardName makes clipboard text load as plain text.
const clipboardName = "clipboard.txt"

// Clipboard is somewhere to paste text from.
type Clipboard interface {
	Fetch() (string, error)
}

// SystemClipboard returns the OS clipboard.
func SystemClipboard() Clipboard {
	return sysClipboard{}
}

type sysClipboard struct{}

func (sysClipboard) Fetch() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	return clipboard.ReadAll()
}

// MemClipboard is an in-memory Clipboard, handy for tests.
type MemClipboard struct {
	mu   sync.Mutex
	text string
}

func (m *MemClipboard) Store(text string) {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
}

func (m *MemClipboard) Fetch() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// ClipboardSource reads the clipboard into a plain-text Source.
func ClipboardSource(cb Clipboard) (Source, error) {
	text, err := cb.Fetch()
	if err != nil {
		return Source{}, &IngestError{Source: "clipboard", Op: "read", Err: err}
	}
	return Source{Name: clipboardName, Data: []byte(text)}, nil
}
