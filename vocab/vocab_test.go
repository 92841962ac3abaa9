package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v, err := New([]string{"사람", " 시간 ", "사람", "", "자연"})
	require.NoError(t, err)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []string{"사람", "시간", "자연"}, v.Words())
	assert.True(t, v.Contains("시간"))
	assert.False(t, v.Contains("음식"))
}

func TestNew_Empty(t *testing.T) {
	_, err := New([]string{"", "   "})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}
