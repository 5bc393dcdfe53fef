package speedreading

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFPages returns the plain text of every page, in page order. Pages
// without a content stream come back empty.
func PDFPages(ctx context.Context, r io.ReaderAt, size int64) ([]string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	totalPages := reader.NumPage()
	pages := make([]string, 0, totalPages)
	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(pageIndex)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			pages = append(pages, "")
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("read page %d: %w", pageIndex, err)
		}
		pages = append(pages, content)
	}
	return pages, nil
}

// loadPDF joins the page texts with single spaces.
func loadPDF(ctx context.Context, src Source) (string, error) {
	pages, err := PDFPages(ctx, bytes.NewReader(src.Data), int64(len(src.Data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, page := range pages {
		b.WriteString(page)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String()), nil
}
