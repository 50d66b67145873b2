package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tawesoft/utf8x/text/category"
)

func TestCorrectedAliases(t *testing.T) {
	// The original source aliased all six of these to SEPARATOR_SPACE.
	assert.NotEqual(t, category.Category(category.ISALPHA), category.SeparatorSpace)
	assert.True(t, category.ISALPHA&category.SeparatorSpace == 0)
	assert.True(t, category.ISUPPER&category.SeparatorSpace == 0)
	assert.True(t, category.ISLOWER&category.SeparatorSpace == 0)
	assert.True(t, category.ISDIGIT&category.SeparatorSpace == 0)
	assert.True(t, category.ISALNUM&category.SeparatorSpace == 0)
	assert.True(t, category.ISXDIGIT&category.SeparatorSpace == 0)

	assert.True(t, category.Is('A', category.ISALPHA))
	assert.True(t, category.Is('A', category.ISUPPER))
	assert.True(t, category.Is('a', category.ISLOWER))
	assert.True(t, category.Is('7', category.ISDIGIT))
	assert.True(t, category.Is('7', category.ISALNUM))
	assert.True(t, category.Is('A', category.ISALNUM))
}

func TestOldAliasesStillCorrectForSpace(t *testing.T) {
	assert.True(t, category.Is(' ', category.ISSPACE))
	assert.True(t, category.Is(' ', category.ISBLANK))
	assert.False(t, category.Is('A', category.ISSPACE))
}

func TestIsCategory(t *testing.T) {
	s := []byte("abc123 def")
	n := category.IsCategory(s, category.ISALNUM)
	assert.Equal(t, len("abc123"), n)
}

func TestIsCategoryEmptyMatchAtFirstByte(t *testing.T) {
	s := []byte(" abc")
	n := category.IsCategory(s, category.ISALNUM)
	assert.Equal(t, 0, n)
}
