package ingest

import (
	"strings"

	"github.com/akraszewski/webdoc"
	pdflib "github.com/ledongthuc/pdf"
)

// extractPDFText extracts plain text from a PDF file, separating pages
// with form feeds.
func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", webdoc.Errorf(webdoc.EINVALID, "open pdf %s: %v", path, err)
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}
