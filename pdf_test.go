package speedreading

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF writes a minimal PDF with one page per entry of pages. Each
// non-empty entry becomes a Helvetica text line; empty entries produce a
// page without a content stream.
func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	var objects []string
	add := func(body string) int {
		objects = append(objects, body)
		return len(objects)
	}

	catalog := add("") // filled in once the page tree exists
	tree := add("")
	font := add("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	var kids bytes.Buffer
	for _, text := range pages {
		contents := ""
		if text != "" {
			stream := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
			obj := add(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
			contents = fmt.Sprintf(" /Contents %d 0 R", obj)
		}
		page := add(fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >>%s >>",
			tree, font, contents))
		fmt.Fprintf(&kids, "%d 0 R ", page)
	}
	objects[catalog-1] = fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", tree)
	objects[tree-1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", bytes.TrimSpace(kids.Bytes()), len(pages))

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, catalog, xref)
	return out.Bytes()
}

func TestPDFPages(t *testing.T) {
	data := buildPDF(t, "Hello world", "", "Second page")

	pages, err := PDFPages(context.Background(), bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, []string{"Hello", "world"}, Tokenize(pages[0]))
	assert.Empty(t, pages[1])
	assert.Equal(t, []string{"Second", "page"}, Tokenize(pages[2]))
}

func TestLoadPDFDocument(t *testing.T) {
	data := buildPDF(t, "Hello world", "again")

	doc, err := Load(context.Background(), Source{Name: "report.pdf", Data: data}, nil)
	require.NoError(t, err)
	assert.Equal(t, PDF, doc.Format)
	assert.Equal(t, []string{"Hello", "world", "again"}, doc.Tokens)
}

func TestLoadPDFWithoutText(t *testing.T) {
	data := buildPDF(t, "")

	_, err := Load(context.Background(), Source{Name: "blank.pdf", Data: data}, nil)
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestPDFPagesErrors(t *testing.T) {
	garbage := []byte("this is not a pdf")
	_, err := PDFPages(context.Background(), bytes.NewReader(garbage), int64(len(garbage)))
	assert.ErrorContains(t, err, "open pdf")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	data := buildPDF(t, "Hello")
	_, err = PDFPages(ctx, bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, context.Canceled)
}
