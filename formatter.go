package webdoc

import "strings"

// FormatDocuments renders documents as a single markdown string, one
// "## Document" section per document in input order. Titled documents
// keep a Source line so the URL survives formatting; untitled ones use
// the URL as the header itself.
func FormatDocuments(docs []*Document) string {
	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if doc.Title != "" {
			b.WriteString("## Document: ")
			b.WriteString(doc.Title)
			b.WriteString("\nSource: ")
			b.WriteString(doc.SourceURL)
		} else {
			b.WriteString("## Document: ")
			b.WriteString(doc.SourceURL)
		}
		b.WriteString("\n")
		b.WriteString(doc.Content)
	}
	return b.String()
}
