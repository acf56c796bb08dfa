package content

import (
	"context"
	"strings"

	"github.com/goliatone/go-site/internal/logging"
	"github.com/goliatone/go-site/internal/markdown"
	"github.com/goliatone/go-site/pkg/interfaces"
)

// MalformedPolicy decides what a list operation does with a file that
// cannot be decoded.
type MalformedPolicy string

const (
	// PolicySkip logs the file at WARN and leaves it out of the result.
	PolicySkip MalformedPolicy = "skip"
	// PolicyAbort fails the whole list call with the malformed-record error.
	PolicyAbort MalformedPolicy = "abort"
)

// ParsePolicy maps a configuration value to a policy, defaulting to skip.
func ParsePolicy(value string) MalformedPolicy {
	if MalformedPolicy(strings.ToLower(strings.TrimSpace(value))) == PolicyAbort {
		return PolicyAbort
	}
	return PolicySkip
}

// DocumentSource is the file access a service needs. *markdown.Loader
// satisfies it.
type DocumentSource interface {
	LoadDirectory(ctx context.Context) ([]markdown.DocumentResult, error)
	LoadSlug(ctx context.Context, slug string) (*markdown.Document, error)
}

// Option configures a content service.
type Option func(*options)

type options struct {
	logger         interfaces.Logger
	policy         MalformedPolicy
	wordsPerMinute int
}

func defaultOptions() options {
	return options{
		logger:         logging.NoOp(),
		policy:         PolicySkip,
		wordsPerMinute: markdown.DefaultWordsPerMinute,
	}
}

func resolveOptions(opts []Option) options {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLogger sets the logger used to report skipped files.
func WithLogger(logger interfaces.Logger) Option {
	return func(o *options) {
		o.logger = logging.OrNoOp(logger)
	}
}

// WithMalformedPolicy sets how list operations treat malformed files.
func WithMalformedPolicy(policy MalformedPolicy) Option {
	return func(o *options) {
		if policy == PolicyAbort {
			o.policy = PolicyAbort
			return
		}
		o.policy = PolicySkip
	}
}

// WithWordsPerMinute sets the reading speed used for article reading times.
func WithWordsPerMinute(wpm int) Option {
	return func(o *options) {
		if wpm > 0 {
			o.wordsPerMinute = wpm
		}
	}
}
