package crawl

import "fmt"

// TruncateURL shortens a URL for terminal display. The tail of a URL
// carries the page path, so truncation keeps the end.
func TruncateURL(url string, maxLen int) string {
	switch {
	case maxLen <= 0:
		return ""
	case maxLen < 4:
		// no room for the "..." marker
		return url[:min(len(url), maxLen)]
	case len(url) <= maxLen:
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes renders a byte count for crawl summaries.
func FormatBytes(bytes int) string {
	const (
		kib = 1024
		mib = kib * 1024
	)
	switch {
	case bytes >= mib:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mib))
	case bytes >= kib:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kib))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens renders an approximate token count for crawl summaries.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}
