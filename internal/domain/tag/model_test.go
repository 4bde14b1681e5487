package tag

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixForChannelType(t *testing.T) {
	testCases := []struct {
		name        string
		channelType string
		expected    string
		expectError bool
	}{
		{name: "instagram", channelType: "Instagram", expected: "IG"},
		{name: "facebook", channelType: "Facebook", expected: "FB"},
		{name: "google", channelType: "Google", expected: "GG"},
		{name: "sms_three_letter_prefix", channelType: "SMS", expected: "SMS"},
		{name: "others", channelType: "Others", expected: "OT"},
		{name: "trims_whitespace", channelType: "  Instagram  ", expected: "IG"},
		{name: "empty", channelType: "", expectError: true},
		{name: "whitespace_only", channelType: "   ", expectError: true},
		{name: "unknown", channelType: "Carrier Pigeon", expectError: true},
		{name: "case_sensitive", channelType: "instagram", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prefix, err := PrefixForChannelType(tc.channelType)
			if tc.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownChannelType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, prefix)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "IG00001", Format("IG", 1))
	assert.Equal(t, "GG00042", Format("GG", 42))
	assert.Equal(t, "SMS00007", Format("SMS", 7))
	assert.Equal(t, "OT99999", Format("OT", 99999))
	assert.Equal(t, "FB00000", Format("FB", 0))

	// numbers beyond the pad width widen rather than truncate
	assert.Equal(t, "IG100000", Format("IG", 100000))
}

func TestFormatParseRoundTrip(t *testing.T) {
	prefixes := []string{"IG", "FB", "GG", "OT", "SMS"}
	numbers := []int64{0, 1, 9, 42, 99, 1000, 54321, 99999}

	for _, prefix := range prefixes {
		for _, n := range numbers {
			rendered := Format(prefix, n)
			gotPrefix, gotNumber, err := Parse(rendered)
			require.NoError(t, err, "parsing %s", rendered)
			assert.Equal(t, prefix, gotPrefix, "prefix of %s", rendered)
			assert.Equal(t, n, gotNumber, "number of %s", rendered)
		}
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name           string
		input          string
		expectedPrefix string
		expectedNumber int64
		expectError    bool
	}{
		{name: "simple", input: "IG00001", expectedPrefix: "IG", expectedNumber: 1},
		{name: "trims_whitespace", input: "  FB00010  ", expectedPrefix: "FB", expectedNumber: 10},
		{name: "sms_prefix", input: "SMS00012", expectedPrefix: "SMS", expectedNumber: 12},
		{name: "unpadded_suffix", input: "IG7", expectedPrefix: "IG", expectedNumber: 7},
		{name: "unknown_prefix_still_parses", input: "ZZ00005", expectedPrefix: "ZZ", expectedNumber: 5},
		{name: "too_short", input: "IG", expectError: true},
		{name: "empty", input: "", expectError: true},
		{name: "no_digits", input: "IGABC", expectError: true},
		{name: "lowercase_prefix", input: "ig00001", expectError: true},
		{name: "digit_in_prefix", input: "1G00001", expectError: true},
		{name: "negative_number", input: "IG-0001", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prefix, number, err := Parse(tc.input)
			if tc.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedTag))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedPrefix, prefix)
			assert.Equal(t, tc.expectedNumber, number)
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Instagram", DisplayName("IG"))
	assert.Equal(t, "SMS", DisplayName("SMS"))
	assert.Equal(t, "ZZ", DisplayName("ZZ"))
}

func TestDuplicateTagsErrorMessage(t *testing.T) {
	inCampaign := &DuplicateTagsError{Scope: DuplicateScopeCampaign, Tags: []string{"IG00001"}}
	assert.Contains(t, inCampaign.Error(), "within campaign")
	assert.Contains(t, inCampaign.Error(), "IG00001")

	global := &DuplicateTagsError{Scope: DuplicateScopeGlobal, Tags: []string{"FB00010", "GG00042"}}
	assert.Contains(t, global.Error(), "another campaign")
	assert.Contains(t, global.Error(), fmt.Sprintf("%s, %s", "FB00010", "GG00042"))
}
