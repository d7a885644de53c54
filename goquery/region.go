package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/akraszewski/webdoc"
	"github.com/andybalholm/cascadia"
)

// SelectRegion narrows an HTML page to the elements matching selector,
// returning their HTML in document order. An invalid selector returns
// EINVALID; a selector matching nothing returns ENOTFOUND so a
// misconfigured selector fails loudly instead of yielding empty pages.
func SelectRegion(html, selector string) (string, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return "", webdoc.Errorf(webdoc.EINVALID, "invalid selector %q: %v", selector, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", webdoc.Errorf(webdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	var sb strings.Builder
	var renderErr error
	doc.FindMatcher(matcher).Each(func(i int, sel *goquery.Selection) {
		out, err := goquery.OuterHtml(sel)
		if err != nil {
			renderErr = err
			return
		}
		sb.WriteString(out)
		sb.WriteString("\n")
	})
	if renderErr != nil {
		return "", webdoc.Errorf(webdoc.EINTERNAL, "render selection: %v", renderErr)
	}
	if sb.Len() == 0 {
		return "", webdoc.Errorf(webdoc.ENOTFOUND, "no elements match selector %q", selector)
	}

	return sb.String(), nil
}
