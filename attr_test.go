package htmlkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValue(t *testing.T) {
	nodes := Parse(`<a href="x.com" data-x="1">link</a>`)
	require.Len(t, nodes, 1)
	a := &nodes[0]

	v, ok := GetValue(a, "href")
	require.True(t, ok)
	assert.Equal(t, "x.com", v)

	_, ok = GetValue(a, "missing")
	assert.False(t, ok)
}

func TestGetID(t *testing.T) {
	nodes := Parse(`<div id="box"></div><div></div>`)
	assert.Equal(t, "box", GetID(&nodes[0]))
	assert.Equal(t, "", GetID(&nodes[1]))
}

func TestGetClassList(t *testing.T) {
	nodes := Parse(`<div class="  a   b  c "></div><div></div>`)
	assert.Equal(t, []string{"a", "b", "c"}, GetClassList(&nodes[0]))
	assert.Nil(t, GetClassList(&nodes[1]))
}
