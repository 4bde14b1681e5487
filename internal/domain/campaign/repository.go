package campaign

import "context"

// Repository is the persistence contract for campaign documents. The tag
// engine only ever reads campaigns through ListAll and TagExists; writes of
// tag numbers happen as part of whole-document campaign writes here.
type Repository interface {
	Create(ctx context.Context, c *Campaign) error
	Get(ctx context.Context, id string) (*Campaign, error)
	Update(ctx context.Context, c *Campaign) error
	Delete(ctx context.Context, id string) error

	// ListAll returns every campaign with its channels, used by the tag
	// reconciler and the cross-campaign validator
	ListAll(ctx context.Context) ([]*Campaign, error)

	// TagExists reports whether any channel of any campaign carries the
	// given tag number
	TagExists(ctx context.Context, tagNumber string) (bool, error)
}
