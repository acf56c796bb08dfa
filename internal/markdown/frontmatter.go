package markdown

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrUnterminatedFrontMatter reports a document that opens a front matter
// block but never closes it.
var ErrUnterminatedFrontMatter = errors.New("markdown: front matter block is not terminated")

// frontMatterOpeners lists the opening delimiters recognised by
// github.com/adrg/frontmatter's default formats.
var frontMatterOpeners = map[string]struct{}{
	"---":     {},
	"---yaml": {},
	"+++":     {},
	"---toml": {},
	";;;":     {},
	"---json": {},
	"{":       {},
}

// ParseFrontMatter extracts the attribute map and the body from source. The
// body is returned exactly as written after the closing delimiter. Documents
// without front matter yield an empty map and the full source as body.
func ParseFrontMatter(source []byte) (map[string]any, []byte, error) {
	meta := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if len(body) == len(source) && opensFrontMatter(source) {
		return nil, nil, ErrUnterminatedFrontMatter
	}
	if meta == nil {
		meta = map[string]any{}
	}

	return meta, body, nil
}

func opensFrontMatter(source []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(source))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		_, ok := frontMatterOpeners[line]
		return ok
	}
	return false
}
