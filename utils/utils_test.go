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
	assert.Len(t, RandomAlphabetString(8), 8)
	assert.NotEqual(t, RandomAlphabetString(16), RandomAlphabetString(16))
}

func TestRedisKeyParser(t *testing.T) {
	parser := RedisKeyParser{delimiter: "__"}

	assert.False(t, parser.ValidateId("user__1"))
	assert.True(t, parser.ValidateId("user-1"))

	key, err := parser.EncodeViewKey("viewer", "profile")
	assert.Nil(t, err)
	assert.Equal(t, "viewer__profile", key)

	viewer, profile, err := parser.DecodeViewKey(key)
	assert.Nil(t, err)
	assert.Equal(t, "viewer", viewer)
	assert.Equal(t, "profile", profile)

	_, err = parser.EncodeViewKey("bad__id", "profile")
	assert.NotNil(t, err)
}
