package content

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-site/internal/markdown"
)

// Kind names a content collection.
type Kind string

const (
	KindArticles  Kind = "articles"
	KindPortfolio Kind = "portfolio"
	KindServices  Kind = "services"
)

const (
	TextCodeNotFound      = "RECORD_NOT_FOUND"
	TextCodeMalformed     = "MALFORMED_RECORD"
	TextCodeDirUnreadable = "CONTENT_DIR_UNREADABLE"
	TextCodeReadFailed    = "CONTENT_READ_FAILED"
)

const (
	metadataKind = "kind"
	metadataSlug = "slug"
	metadataPath = "path"
)

// NotFoundError reports a slug with no content file.
func NotFoundError(kind Kind, slug string) *goerrors.Error {
	return goerrors.New(fmt.Sprintf("%s record %q not found", kind, slug), goerrors.CategoryNotFound).
		WithTextCode(TextCodeNotFound).
		WithMetadata(map[string]any{
			metadataKind: string(kind),
			metadataSlug: slug,
		})
}

// MalformedError reports a content file whose front matter cannot be
// decoded into a record. Field level problems are exposed as validation
// errors on the result.
func MalformedError(kind Kind, slug, path string, cause error) *goerrors.Error {
	message := fmt.Sprintf("%s record %q is malformed", kind, slug)

	var err *goerrors.Error
	if cause == nil {
		err = goerrors.New(message, goerrors.CategoryBadInput)
	} else {
		err = goerrors.Wrap(cause, goerrors.CategoryBadInput, message)
		err.Category = goerrors.CategoryBadInput
	}

	var fields goerrors.ValidationErrors
	if errors.As(cause, &fields) {
		err.ValidationErrors = fields
	}

	return err.WithTextCode(TextCodeMalformed).
		WithMetadata(map[string]any{
			metadataKind: string(kind),
			metadataSlug: slug,
			metadataPath: path,
		})
}

// IsNotFound reports whether err is a missing-record error.
func IsNotFound(err error) bool {
	return hasTextCode(err, TextCodeNotFound)
}

// IsMalformed reports whether err is a malformed-record error.
func IsMalformed(err error) bool {
	return hasTextCode(err, TextCodeMalformed)
}

func hasTextCode(err error, code string) bool {
	var e *goerrors.Error
	if !goerrors.As(err, &e) {
		return false
	}
	return e.TextCode == code
}

func directoryError(kind Kind, err error) error {
	if isContextError(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("read %s directory", kind)).
		WithTextCode(TextCodeDirUnreadable).
		WithMetadata(map[string]any{metadataKind: string(kind)})
}

// loadError maps a loader failure for a single slug onto the content error set.
func loadError(kind Kind, slug, path string, err error) error {
	var docErr *markdown.DocumentError
	switch {
	case isContextError(err):
		return err
	case errors.Is(err, markdown.ErrDocumentNotFound):
		return NotFoundError(kind, slug)
	case errors.As(err, &docErr):
		return MalformedError(kind, slug, docErr.Path, docErr.Err)
	default:
		return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("read %s record %q", kind, slug)).
			WithTextCode(TextCodeReadFailed).
			WithMetadata(map[string]any{
				metadataKind: string(kind),
				metadataSlug: slug,
				metadataPath: path,
			})
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
