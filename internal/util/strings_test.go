package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var machineIDs = []string{"blowRoom", "carding", "drawFrame", "ringFrame", "autoconer"}

func TestJoinOrNone(t *testing.T) {
	assert.Equal(t, "(none)", JoinOrNone(nil))
	assert.Equal(t, "(none)", JoinOrNone([]string{}))
	assert.Equal(t, "carding", JoinOrNone([]string{"carding"}))
	assert.Equal(t, "blowRoom, carding", JoinOrNone(machineIDs[:2]))
}

func TestJoinOrDefault(t *testing.T) {
	assert.Equal(t, "N/A", JoinOrDefault(nil, "N/A"))
	assert.Equal(t, "", JoinOrDefault([]string{}, ""))
	assert.Equal(t, "drawFrame, ringFrame", JoinOrDefault(machineIDs[2:4], "N/A"))
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "machines"},
		{1, "machine"},
		{5, "machines"},
		{-1, "machines"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Pluralize(tt.count, "machine", "machines"), "count %d", tt.count)
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "carding", 7},
		{"carding", "", 7},
		{"carding", "carding", 0},
		{"carding", "cardnig", 2},
		{"autoconer", "autocner", 1},
		{"ringFrame", "ringFrames", 1},
		{"blowRoom", "blowroom", 1},
		{"drawFrame", "ringFrame", 4},
		{"°C", "°F", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"->"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevenshteinDistance(tt.a, tt.b))
		})
	}
}

func TestSuggestSimilar(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "transposed letters",
			input:    "cardnig",
			expected: []string{"carding"},
		},
		{
			name:     "case insensitive",
			input:    "BLOWROOM",
			expected: []string{"blowRoom"},
		},
		{
			name:     "missing char",
			input:    "autocner",
			expected: []string{"autoconer"},
		},
		{
			name:     "no close match returns nil",
			input:    "xyz",
			expected: nil,
		},
		{
			name:     "empty input returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "exact match returns it",
			input:    "drawFrame",
			expected: []string{"drawFrame"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SuggestSimilar(tt.input, machineIDs, 3))
		})
	}
}

func TestSuggestSimilar_Subsequence(t *testing.T) {
	result := SuggestSimilar("ring", machineIDs, 2)
	assert.Contains(t, result, "ringFrame")
	assert.Equal(t, "ringFrame", result[0])
	assert.NotContains(t, result, "blowRoom")
}

func TestSuggestSimilar_EmptyCandidates(t *testing.T) {
	assert.Nil(t, SuggestSimilar("carding", nil, 3))
	assert.Nil(t, SuggestSimilar("carding", []string{}, 3))
}
