package webdoc

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// SplitConfig controls markdown splitting behavior.
type SplitConfig struct {
	ChunkSize    int // Target chunk size in tokens.
	ChunkOverlap int // Overlap between consecutive chunks in tokens.
	MinChunk     int // Minimum chunk size to emit.
}

// DefaultSplitConfig returns sensible defaults for retrieval chunks.
func DefaultSplitConfig() SplitConfig {
	return SplitConfig{
		ChunkSize:    1500,
		ChunkOverlap: 200,
		MinChunk:     100,
	}
}

// SplitPart is a chunk of markdown produced by SplitMarkdown, carrying
// the heading trail under which its text appeared.
type SplitPart struct {
	Content  string
	Headings []string
}

// EstimateTokens gives a rough token count for English text.
// Exact tokenization is not required for chunk sizing.
func EstimateTokens(s string) int {
	if s == "" {
		return 0
	}
	words := len(strings.Fields(s))
	tokens := int(float64(words) * 1.33)
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}

// SplitMarkdown parses markdown and produces heading-aware parts sized
// for embedding and retrieval. Text is grouped by its heading trail;
// sections larger than the target size are split on block boundaries
// with a token overlap carried between consecutive parts.
func SplitMarkdown(markdown string, cfg SplitConfig) []SplitPart {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 1500
	}
	if cfg.ChunkOverlap <= 0 {
		cfg.ChunkOverlap = 200
	}
	if cfg.MinChunk <= 0 {
		cfg.MinChunk = 100
	}

	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var parts []SplitPart
	var trail [6]string
	var blocks []string

	flush := func() {
		if len(blocks) == 0 {
			return
		}
		headings := headingTrail(trail)
		for _, content := range splitBlocks(blocks, cfg) {
			// Undersized parts are merged into their predecessor so
			// short sections stay searchable.
			if EstimateTokens(content) < cfg.MinChunk && len(parts) > 0 {
				prev := &parts[len(parts)-1]
				prev.Content += "\n\n" + content
				continue
			}
			parts = append(parts, SplitPart{Content: content, Headings: headings})
		}
		blocks = blocks[:0]
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			flush()
			title := strings.TrimSpace(blockText(node, source))
			level := node.Level
			if level >= 1 && level <= 6 {
				trail[level-1] = title
				for i := level; i < 6; i++ {
					trail[i] = ""
				}
			}
			return ast.WalkSkipChildren, nil

		// TextBlock carries the text of tight list items, which goldmark
		// does not wrap in paragraphs.
		case *ast.Paragraph, *ast.TextBlock, *ast.CodeBlock, *ast.FencedCodeBlock:
			if t := strings.TrimSpace(blockText(n, source)); t != "" {
				blocks = append(blocks, t)
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	flush()

	return parts
}

// headingTrail collapses the level array into the active trail.
func headingTrail(trail [6]string) []string {
	var out []string
	for _, t := range trail {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// blockText returns the raw source text covered by a block node's lines.
func blockText(n ast.Node, source []byte) string {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}

// splitBlocks joins blocks into parts of approximately ChunkSize tokens,
// carrying ChunkOverlap tokens of trailing text into the next part.
func splitBlocks(blocks []string, cfg SplitConfig) []string {
	var result []string
	var current strings.Builder
	currentTokens := 0

	emit := func() {
		if current.Len() == 0 {
			return
		}
		result = append(result, current.String())
		overlap := overlapText(current.String(), cfg.ChunkOverlap)
		current.Reset()
		currentTokens = 0
		if overlap != "" {
			current.WriteString(overlap)
			currentTokens = EstimateTokens(overlap)
		}
	}

	for _, block := range blocks {
		blockTokens := EstimateTokens(block)

		if currentTokens > 0 && currentTokens+blockTokens > cfg.ChunkSize {
			emit()
		}

		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(block)
		currentTokens += blockTokens
	}

	if current.Len() > 0 {
		result = append(result, current.String())
	}

	return result
}

// overlapText returns roughly n tokens' worth of trailing words.
func overlapText(s string, n int) string {
	if n <= 0 {
		return ""
	}
	words := strings.Fields(s)
	keep := int(float64(n) / 1.33)
	if keep <= 0 || keep >= len(words) {
		return ""
	}
	return strings.Join(words[len(words)-keep:], " ")
}
