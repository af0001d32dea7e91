package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString([]string{"a", "b"}, "a"))
	assert.False(t, ContainsString([]string{}, "a"))
	assert.False(t, ContainsString([]string{"a", "b"}, "c"))
}

func TestRandomAlphabetString(t *testing.T) {
	s := RandomAlphabetString(TestDBNameCharLength)
	assert.Len(t, s, TestDBNameCharLength)
	for _, r := range s {
		assert.True(t, r >= 'a' && r <= 'z')
	}
	assert.Equal(t, "", RandomAlphabetString(0))
}

func TestParseCommaSeparated(t *testing.T) {
	assert.Equal(t, []string{".jpg", ".png"}, ParseCommaSeparated(" .jpg,, .png "))
	assert.Equal(t, []string{}, ParseCommaSeparated(""))
}
