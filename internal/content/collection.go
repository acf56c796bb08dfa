package content

import (
	"context"

	"github.com/goliatone/go-site/internal/logging"
	"github.com/goliatone/go-site/internal/markdown"
)

// collection turns the documents of one directory into records of type T.
type collection[T any] struct {
	kind   Kind
	source DocumentSource
	decode func(*markdown.Document) (T, error)
	opts   options
}

// all returns every decodable record in directory order. Malformed files
// are handled according to the configured policy.
func (c *collection[T]) all(ctx context.Context) ([]T, error) {
	results, err := c.source.LoadDirectory(ctx)
	if err != nil {
		return nil, directoryError(c.kind, err)
	}

	records := make([]T, 0, len(results))
	for _, result := range results {
		var record T
		var failure error

		if result.Err != nil {
			failure = loadError(c.kind, result.Slug, result.Path, result.Err)
			if isContextError(failure) {
				return nil, failure
			}
		} else if record, err = c.decode(result.Document); err != nil {
			failure = MalformedError(c.kind, result.Slug, result.Path, err)
		}

		if failure != nil {
			if c.opts.policy == PolicyAbort {
				return nil, failure
			}
			logging.WithDocumentContext(c.opts.logger, string(c.kind), result.Path, result.Slug).
				Warn("content.record.skipped", "error", failure)
			continue
		}
		records = append(records, record)
	}

	c.opts.logger.Debug("content.collection.loaded", "kind", string(c.kind), "count", len(records), "files", len(results))
	return records, nil
}

// one loads a single record. Malformed files always surface as errors,
// whatever the list policy.
func (c *collection[T]) one(ctx context.Context, slug string) (*T, error) {
	doc, err := c.source.LoadSlug(ctx, slug)
	if err != nil {
		return nil, loadError(c.kind, slug, "", err)
	}

	record, err := c.decode(doc)
	if err != nil {
		return nil, MalformedError(c.kind, slug, doc.Path, err)
	}
	return &record, nil
}
