package resume

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText extracts the visible text of every page of a PDF document,
// in document order, joined by single newlines. Pages that yield no text
// (scanned images, broken encodings) are skipped silently. The whole
// document is buffered in memory; resumes are page-count-bounded so this
// is acceptable.
func ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Err: err}
	}

	var pages []string
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document
			continue
		}

		pages = append(pages, strings.TrimRight(text, "\n"))
	}

	return strings.Join(pages, "\n"), nil
}
