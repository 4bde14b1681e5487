package tag

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnknownChannelType marks allocation requests for a channel type
	// outside the closed prefix table
	ErrUnknownChannelType = errors.New("unknown channel type")

	// ErrMalformedTag marks tag numbers that do not parse as
	// prefix + numeric suffix
	ErrMalformedTag = errors.New("malformed tag number")
)

// DuplicateScope says where a duplicate tag number was found
type DuplicateScope string

const (
	// DuplicateScopeCampaign: the same tag appears more than once within a
	// single submission
	DuplicateScopeCampaign DuplicateScope = "campaign"

	// DuplicateScopeGlobal: the tag is already carried by a channel of
	// another persisted campaign
	DuplicateScopeGlobal DuplicateScope = "global"
)

// DuplicateTagsError reports the exact reference codes that collided and
// whether the collision was internal to the submission or against existing
// data, so the operator can correct the input without guessing.
type DuplicateTagsError struct {
	Scope DuplicateScope
	Tags  []string
}

func (e *DuplicateTagsError) Error() string {
	if e.Scope == DuplicateScopeCampaign {
		return fmt.Sprintf("duplicate tag numbers within campaign: %s", strings.Join(e.Tags, ", "))
	}
	return fmt.Sprintf("tag numbers already used by another campaign: %s", strings.Join(e.Tags, ", "))
}
