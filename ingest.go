package speedreading

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file type; expected .txt, .md, .pdf, .html or an image")
	ErrInvalidEncoding   = errors.New("text is not valid UTF-8")
)

// Format is a supported input format.
type Format int

const (
	Unknown Format = iota
	PlainText
	PDF
	HTML
	Image
)

func (f Format) String() string {
	switch f {
	case PlainText:
		return "text"
	case PDF:
		return "pdf"
	case HTML:
		return "html"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file name to its format by extension.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".text", ".md":
		return PlainText
	case ".pdf":
		return PDF
	case ".html", ".htm":
		return HTML
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return Image
	default:
		return Unknown
	}
}

// Source is raw input waiting to be turned into text.
type Source struct {
	Name string
	Data []byte
}

func SourceFromFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, &IngestError{Source: path, Op: "read", Err: err}
	}
	return Source{Name: path, Data: data}, nil
}

// Loader extracts text from a source.
type Loader interface {
	Load(ctx context.Context, src Source) (string, error)
}

// LoaderFunc adapts a function to a Loader.
type LoaderFunc func(ctx context.Context, src Source) (string, error)

func (fn LoaderFunc) Load(ctx context.Context, src Source) (string, error) {
	return fn(ctx, src)
}

// IngestError reports which source and step failed.
type IngestError struct {
	Source string
	Op     string
	Err    error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// Registry maps formats to loaders.
type Registry struct {
	loaders map[Format]Loader
	mu      sync.RWMutex
}

// NewRegistry creates a Registry with the built-in loaders registered.
func NewRegistry() *Registry {
	r := &Registry{
		loaders: make(map[Format]Loader),
	}
	r.loaders[PlainText] = LoaderFunc(loadPlainText)
	r.loaders[PDF] = LoaderFunc(loadPDF)
	r.loaders[HTML] = LoaderFunc(loadHTML)
	r.loaders[Image] = NewImageLoader("")
	return r
}

// Get returns the loader registered for f.
func (r *Registry) Get(f Format) (Loader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.loaders[f]
	if !ok {
		return nil, fmt.Errorf("no loader for %s: %w", f, ErrUnsupportedFormat)
	}
	return l, nil
}

// Register adds a loader for a format that has none yet.
func (r *Registry) Register(f Format, l Loader) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.loaders[f]; exists {
		return fmt.Errorf("loader already registered for %s", f)
	}
	r.loaders[f] = l
	return nil
}

// Replace installs l for f, overriding any existing loader.
func (r *Registry) Replace(f Format, l Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[f] = l
}

// Load picks a loader from the source name and returns its text in NFC form.
func (r *Registry) Load(ctx context.Context, src Source) (string, error) {
	format := DetectFormat(src.Name)
	l, err := r.Get(format)
	if err != nil {
		return "", &IngestError{Source: src.Name, Op: "detect", Err: err}
	}
	if err := ctx.Err(); err != nil {
		return "", &IngestError{Source: src.Name, Op: "load " + format.String(), Err: err}
	}

	text, err := l.Load(ctx, src)
	if err != nil {
		return "", &IngestError{Source: src.Name, Op: "load " + format.String(), Err: err}
	}
	return norm.NFC.String(text), nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func loadPlainText(_ context.Context, src Source) (string, error) {
	data := bytes.TrimPrefix(src.Data, utf8BOM)
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}
