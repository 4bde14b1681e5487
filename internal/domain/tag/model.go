package tag

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
)

// NumberPadWidth is the fixed zero-padding width of the numeric part of a
// tag number. The rendered form is load-bearing: reference codes printed on
// past campaign material must keep parsing, so it never changes.
const NumberPadWidth = 5

// Counter is the persisted high-water mark for one tag prefix. LastNumber
// only ever moves up, even when every tag carrying the prefix has been
// deleted, so a reference code is never handed out twice.
type Counter struct {
	Prefix     string    `bson:"_id" json:"prefix"`
	LastNumber int64     `bson:"last_number" json:"last_number"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// channelTypePrefixes is the closed enumeration of channel types the
// business recognises. Prefixes are two upper-case letters, except SMS.
var channelTypePrefixes = map[string]string{
	"Instagram":     "IG",
	"Facebook":      "FB",
	"YouTube":       "YT",
	"Google":        "GG",
	"TikTok":        "TK",
	"Snapchat":      "SC",
	"Twitter":       "TW",
	"LinkedIn":      "LN",
	"WhatsApp":      "WA",
	"Telegram":      "TG",
	"Threads":       "TH",
	"Pinterest":     "PN",
	"SMS":           "SMS",
	"Email":         "EM",
	"Radio":         "RD",
	"Television":    "TV",
	"Newspaper":     "NP",
	"Magazine":      "MZ",
	"Billboard":     "BB",
	"Hoarding":      "HD",
	"Flyer":         "FL",
	"Brochure":      "BR",
	"Banner":        "BN",
	"Pamphlet":      "PM",
	"Website":       "WB",
	"Blog":          "BG",
	"Influencer":    "IN",
	"Event":         "EV",
	"Exhibition":    "EX",
	"Cinema":        "CN",
	"Vehicle":       "VH",
	"Wall Painting": "WP",
	"Others":        "OT",
}

// prefixDisplayNames is the reverse lookup used by the counters listing.
var prefixDisplayNames = func() map[string]string {
	names := make(map[string]string, len(channelTypePrefixes))
	for channelType, prefix := range channelTypePrefixes {
		names[prefix] = channelType
	}
	return names
}()

// PrefixForChannelType resolves a channel type label to its tag prefix.
// The label is trimmed before lookup. The platform argument is accepted by
// the allocation API for forward compatibility but does not influence the
// prefix today.
func PrefixForChannelType(channelType string) (string, error) {
	channelType = strings.TrimSpace(channelType)
	if channelType == "" {
		return "", ierr.WithError(ErrUnknownChannelType).
			WithHint("Channel type is required").
			Mark(ierr.ErrValidation)
	}

	prefix, ok := channelTypePrefixes[channelType]
	if !ok {
		return "", ierr.WithError(ErrUnknownChannelType).
			WithHintf("Unknown channel type %q", channelType).
			WithReportableDetails(map[string]any{"channel_type": channelType}).
			Mark(ierr.ErrValidation)
	}
	return prefix, nil
}

// DisplayName returns the human-readable platform name for a prefix, or the
// prefix itself when it is not in the table. Display only, never consulted
// for allocation.
func DisplayName(prefix string) string {
	if name, ok := prefixDisplayNames[prefix]; ok {
		return name
	}
	return prefix
}

// Format renders a tag number in its canonical wire form,
// e.g. Format("IG", 1) == "IG00001".
func Format(prefix string, number int64) string {
	return fmt.Sprintf("%s%0*d", prefix, NumberPadWidth, number)
}

// Parse splits a tag number into its prefix and numeric suffix. The prefix
// is "SMS" when the tag starts with it, otherwise the first two characters;
// the remainder must parse as a non-negative integer. Parsing is used by the
// reconciler's tolerant scan, so it reports malformed input without any
// classification beyond ErrMalformedTag.
func Parse(tagNumber string) (string, int64, error) {
	tagNumber = strings.TrimSpace(tagNumber)
	if len(tagNumber) < 3 {
		return "", 0, ierr.WithError(ErrMalformedTag).
			WithHintf("tag number %q is too short", tagNumber).
			Mark(ierr.ErrValidation)
	}

	prefixLen := 2
	if strings.HasPrefix(tagNumber, "SMS") && len(tagNumber) > 3 {
		prefixLen = 3
	}

	prefix := tagNumber[:prefixLen]
	for _, r := range prefix {
		if r < 'A' || r > 'Z' {
			return "", 0, ierr.WithError(ErrMalformedTag).
				WithHintf("tag number %q has an invalid prefix", tagNumber).
				Mark(ierr.ErrValidation)
		}
	}

	number, err := strconv.ParseInt(tagNumber[prefixLen:], 10, 64)
	if err != nil || number < 0 {
		return "", 0, ierr.WithError(ErrMalformedTag).
			WithHintf("tag number %q has a non-numeric suffix", tagNumber).
			Mark(ierr.ErrValidation)
	}

	return prefix, number, nil
}
