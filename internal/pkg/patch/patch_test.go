//go:build unit

package patch

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	off := false
	assert.False(t, Coalesce(&off, true))
	assert.True(t, Coalesce[bool](nil, true))
}

func TestMap(t *testing.T) {
	assert.Nil(t, Map(nil, func(v int64) string { return strconv.FormatInt(v, 10) }))

	n := int64(4500)
	got := Map(&n, func(v int64) string { return strconv.FormatInt(v, 10) })
	if assert.NotNil(t, got) {
		assert.Equal(t, "4500", *got)
	}
}
