package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/akraszewski/webdoc"
)

// Ensure LinkSelector implements webdoc.LinkSelector at compile time.
var _ webdoc.LinkSelector = (*LinkSelector)(nil)

// regionConfig pairs a CSS selector with the priority and source label
// assigned to links found under it.
type regionConfig struct {
	selector string
	priority webdoc.LinkPriority
	source   string
}

// defaultRegions covers the common page regions in priority order.
var defaultRegions = []regionConfig{
	{".toc a[href], .table-of-contents a[href], .sidebar a[href], aside a[href]", webdoc.PriorityTOC, "toc"},
	{"nav a[href], [role=\"navigation\"] a[href], .nav a[href], .menu a[href], .navbar a[href]", webdoc.PriorityNavigation, "nav"},
	{"main a[href], article a[href], .content a[href]", webdoc.PriorityContent, "content"},
	{"footer a[href], .footer a[href]", webdoc.PriorityFooter, "footer"},
}

// LinkSelector extracts prioritized same-host links from HTML using
// region selectors that work across page layouts. Links are
// deduplicated by URL, keeping the highest priority version; external
// links are filtered out.
type LinkSelector struct {
	regions []regionConfig
}

// NewLinkSelector creates a LinkSelector with the default page regions.
func NewLinkSelector() *LinkSelector {
	return &LinkSelector{regions: defaultRegions}
}

// ExtractLinks parses HTML and returns discovered links with priority.
// The returned links maintain document order based on first occurrence.
func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]webdoc.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, webdoc.Errorf(webdoc.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webdoc.Errorf(webdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	// Track seen URLs with their index in the result slice so a higher
	// priority duplicate can replace in place.
	seen := make(map[string]int)
	var links []webdoc.DiscoveredLink

	collect := func(region regionConfig) {
		doc.Find(region.selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}
			if skipHref(href) {
				return
			}

			resolved := resolveHref(base, href)
			if resolved == "" {
				return
			}
			if !sameHost(base, resolved) {
				return
			}

			link := webdoc.DiscoveredLink{
				URL:      resolved,
				Priority: region.priority,
				Text:     strings.TrimSpace(sel.Text()),
				Source:   region.source,
			}

			if idx, ok := seen[resolved]; ok {
				if region.priority > links[idx].Priority {
					links[idx] = link
				}
			} else {
				seen[resolved] = len(links)
				links = append(links, link)
			}
		})
	}

	for _, region := range s.regions {
		collect(region)
	}

	// Fallback sweep over all anchors so pages without semantic regions
	// still get their links discovered. Duplicates keep their higher
	// priority from the region pass.
	collect(regionConfig{"a[href]", webdoc.PriorityFallback, "fallback"})

	return links, nil
}

// resolveHref resolves href against base, stripping fragments for
// deduplication. Returns empty string for unparseable or
// self-referential links.
func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// sameHost checks if the resolved URL has the same host as the base
// URL. Exact match: subdomains count as different hosts.
func sameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// skipHref reports whether the href is a non-HTTP link.
func skipHref(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
