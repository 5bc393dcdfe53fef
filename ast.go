package speedreading

import "fmt"

// Word is a token together with where it came from in the source text.
type Word struct {
	Text      string `json:"text"`
	Position  int    `json:"position"`
	StartByte int    `json:"startByte"`
	EndByte   int    `json:"endByte"`
}

// Layout splits a token around its anchor character.
// Before + Anchor + After always reconstructs the token.
type Layout struct {
	Before string `json:"before"`
	Anchor string `json:"anchor,omitempty"`
	After  string `json:"after"`
	// Index is the rune offset of Anchor, -1 when the token is empty.
	Index int `json:"index"`
}

// HasAnchor reports whether the layout carries an anchor character.
func (l Layout) HasAnchor() bool {
	return l.Index >= 0
}

// AnchorRune returns the anchor character, or 0 when there is none.
func (l Layout) AnchorRune() rune {
	for _, r := range l.Anchor {
		return r
	}
	return 0
}

// String reassembles the original token.
func (l Layout) String() string {
	return l.Before + l.Anchor + l.After
}

// Frame is one display step handed to a Renderer.
type Frame struct {
	Layout   Layout `json:"layout"`
	Position int    `json:"position"`
	Total    int    `json:"total"`
}

// Progress renders the human readable position, e.g. "Word 3 of 120".
func (f Frame) Progress() string {
	return fmt.Sprintf("Word %d of %d", f.Position+1, f.Total)
}

// emptyProgress is shown once playback has been stopped.
const emptyProgress = "Word 0 of 0"

// DocumentNode is the debug dump of a loaded document.
type DocumentNode struct {
	Name   string       `json:"name"`
	Format string       `json:"format"`
	Stats  Stats        `json:"stats"`
	Words  []LayoutNode `json:"words"`
}

// LayoutNode pairs a lexed word with its layout.
type LayoutNode struct {
	Word   Word   `json:"word"`
	Layout Layout `json:"layout"`
}
