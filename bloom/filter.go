// Package bloom tracks seen URLs with a Bloom filter so crawl
// frontiers can deduplicate without storing every URL.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a set-like membership sketch for URLs. Lookups can report
// false positives at the configured rate but never false negatives, so
// a crawl may skip the odd page but never fetches one twice.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter sizes a filter for n expected URLs at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add marks a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether a URL has (probably) been seen.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// AddIfNew marks the URL as seen and reports whether it was new.
// This is the test-and-set a frontier needs when deciding whether to
// enqueue a discovered link.
func (f *Filter) AddIfNew(url string) bool {
	return !f.f.TestAndAddString(url)
}

// EstimatedCount approximates how many distinct URLs have been added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
