package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldSetContains(t *testing.T) {
	t.Parallel()

	set := NewFoldSet("PV", "Teaser", ".MKV")

	assert.True(t, set.Contains("pv"))
	assert.True(t, set.Contains("TEASER"))
	assert.True(t, set.Contains("teaser"))
	assert.True(t, set.Contains(".mkv"))
	assert.False(t, set.Contains("trailer"))
	assert.False(t, set.Contains(""))
}

func TestFoldSetEmpty(t *testing.T) {
	t.Parallel()

	assert.False(t, NewFoldSet().Contains("anything"))
}
