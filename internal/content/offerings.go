package content

import (
	"context"

	"github.com/goliatone/go-site/internal/markdown"
	"github.com/goliatone/go-site/pkg/interfaces"
)

// OfferingService reads service offerings from a content directory.
type OfferingService struct {
	records collection[interfaces.ServiceOffering]
}

var _ interfaces.OfferingService = (*OfferingService)(nil)

// NewOfferingService constructs an offering service over source.
func NewOfferingService(source DocumentSource, opts ...Option) *OfferingService {
	return &OfferingService{
		records: collection[interfaces.ServiceOffering]{
			kind:   KindServices,
			source: source,
			opts:   resolveOptions(opts),
			decode: decodeOffering,
		},
	}
}

func decodeOffering(doc *markdown.Document) (interfaces.ServiceOffering, error) {
	fields := newFieldDecoder(doc.FrontMatter)
	offering := interfaces.ServiceOffering{
		Slug:         doc.Slug,
		Title:        fields.String("title"),
		Description:  fields.String("description"),
		Icon:         fields.String("icon"),
		Features:     fields.Strings("features"),
		Body:         doc.Body,
		Image:        fields.String("image"),
		Benefits:     fields.Strings("benefits"),
		Technologies: fields.Strings("technologies"),
		Pricing:      fields.OptionalString("pricing"),
		Deliverables: fields.Strings("deliverables"),
	}
	if err := fields.Err(); err != nil {
		return interfaces.ServiceOffering{}, err
	}
	return offering, nil
}

// ListAll returns every offering in directory order.
func (s *OfferingService) ListAll(ctx context.Context) ([]interfaces.ServiceOffering, error) {
	return s.records.all(ctx)
}

// GetBySlug returns the offering stored as <slug>.md.
func (s *OfferingService) GetBySlug(ctx context.Context, slug string) (*interfaces.ServiceOffering, error) {
	return s.records.one(ctx, slug)
}
