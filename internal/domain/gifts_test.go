package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestGifts_OrderPreservingAndConcatenative(t *testing.T) {
	got := SuggestGifts([]string{"Science", "Music"})
	want := []string{
		"Science kit", "Microscope", "Chemistry set",
		"Musical instrument", "Headphones", "Music lessons",
	}
	assert.Equal(t, want, got)
}

func TestSuggestGifts_UnknownTagContributesNothing(t *testing.T) {
	got := SuggestGifts([]string{"Music", "Unknown"})
	assert.Equal(t, []string{"Musical instrument", "Headphones", "Music lessons"}, got)
}

func TestSuggestGifts_NoDeduplication(t *testing.T) {
	got := SuggestGifts([]string{"Music", "Music"})
	require.Len(t, got, 6)
	assert.Equal(t, got[:3], got[3:])
}

func TestSuggestGifts_Empty(t *testing.T) {
	assert.Empty(t, SuggestGifts(nil))
	assert.Empty(t, SuggestGifts([]string{}))
}

func TestSuggestGifts_EveryInterestHasSuggestions(t *testing.T) {
	for _, interest := range Interests {
		assert.NotEmpty(t, SuggestGifts([]string{interest}), interest)
	}
}

func TestIsBirthMonth(t *testing.T) {
	for _, m := range BirthMonths {
		assert.True(t, IsBirthMonth(m), m)
	}
	assert.False(t, IsBirthMonth("march"))
	assert.False(t, IsBirthMonth(""))
}
