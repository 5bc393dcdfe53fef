// Package speedreading implements Rapid Serial Visual Presentation reading:
// text is split into words which are shown one at a time, each aligned on an
// anchor character that stays in the same place on screen.
//
// The core is two pure functions, Tokenize and ResolveAnchor. Around them
// sit loaders for plain text, PDF, HTML, clipboard and (optionally) OCR'd
// images, a Player that steps through the words at a fixed rate, and
// renderers for terminals and animated GIFs.
package speedreading

import (
	"context"
	"fmt"
)

// Document is a loaded text ready to be read.
type Document struct {
	Name   string
	Format Format
	Text   string
	Tokens []string
}

// Open loads the file at path. A nil registry uses NewRegistry.
func Open(ctx context.Context, path string, reg *Registry) (*Document, error) {
	src, err := SourceFromFile(path)
	if err != nil {
		return nil, err
	}
	return Load(ctx, src, reg)
}

// Load turns a source into a Document, failing with ErrNoWords when the
// extracted text has no words in it.
func Load(ctx context.Context, src Source, reg *Registry) (*Document, error) {
	if reg == nil {
		reg = NewRegistry()
	}
	text, err := reg.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	doc, err := FromText(src.Name, text)
	if err != nil {
		return nil, err
	}
	doc.Format = DetectFormat(src.Name)
	return doc, nil
}

// FromText wraps text that is already in memory.
func FromText(name, text string) (*Document, error) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoWords)
	}
	return &Document{
		Name:   name,
		Format: PlainText,
		Text:   text,
		Tokens: tokens,
	}, nil
}

// Layouts resolves the anchor of every token.
func (d *Document) Layouts() []Layout {
	layouts := make([]Layout, len(d.Tokens))
	for i, tok := range d.Tokens {
		layouts[i] = ResolveAnchor(tok)
	}
	return layouts
}

// Frames returns the frames a full playback would render, in order.
func (d *Document) Frames() []Frame {
	frames := make([]Frame, len(d.Tokens))
	for i, tok := range d.Tokens {
		frames[i] = Frame{Layout: ResolveAnchor(tok), Position: i, Total: len(d.Tokens)}
	}
	return frames
}

func (d *Document) Stats(wpm int) Stats {
	return analyzeTokens(d.Tokens, wpm)
}

// Node builds the debug dump of the document.
func (d *Document) Node(wpm int) DocumentNode {
	words := Lex(d.Text)
	nodes := make([]LayoutNode, len(words))
	for i, w := range words {
		nodes[i] = LayoutNode{Word: w, Layout: ResolveAnchor(w.Text)}
	}
	return DocumentNode{
		Name:   d.Name,
		Format: d.Format.String(),
		Stats:  d.Stats(wpm),
		Words:  nodes,
	}
}
