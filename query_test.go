package htmlkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const queryFixture = `
<div id="main" class="container wide">
	<h1 class="title">Hello</h1>
	<p class="body">World <span class="highlight">!</span></p>
	<!-- a comment -->
	<ul>
		<li class="item">one</li>
		<li class="item">two</li>
	</ul>
</div>`

func TestGetElementsByTagName(t *testing.T) {
	nodes := Parse(queryFixture)
	items := GetElementsByTagName(nodes, "LI")
	require.Len(t, items, 2)
	assert.Equal(t, "one", TextContent(items[0]))
	assert.Equal(t, "two", TextContent(items[1]))
}

func TestGetElementsByClassName(t *testing.T) {
	nodes := Parse(queryFixture)
	items := GetElementsByClassName(nodes, "item")
	assert.Len(t, items, 2)

	wide := GetElementsByClassName(nodes, "wide")
	require.Len(t, wide, 1)
	assert.Equal(t, "div", wide[0].TagName)
}

func TestGetElementByID(t *testing.T) {
	nodes := Parse(queryFixture)
	n, ok := GetElementByID(nodes, "main")
	require.True(t, ok)
	assert.Equal(t, "div", n.TagName)

	_, ok = GetElementByID(nodes, "missing")
	assert.False(t, ok)
}

func TestFindElement(t *testing.T) {
	nodes := Parse(queryFixture)
	n, ok := FindElement(nodes, func(n *Node) bool { return n.TagName == "span" })
	require.True(t, ok)
	assert.Equal(t, "!", TextContent(n))
}

func TestMapElements(t *testing.T) {
	nodes := Parse(`<p>a</p><p>b</p><p>c</p>`)
	got := MapElements(nodes, func(n *Node) string { return TextContent(n) })
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestFilterMapElements(t *testing.T) {
	nodes := Parse(`<p id="x">a</p><p>b</p><p id="y">c</p>`)
	got := FilterMapElements(nodes, func(n *Node) (string, bool) {
		id := GetID(n)
		return id, id != ""
	})
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestMapElementsDoesNotDescendIntoChildren(t *testing.T) {
	nodes := Parse(`<div><p>nested</p></div>`)
	got := MapElements(nodes, func(n *Node) string { return n.TagName })
	assert.Equal(t, []string{"div"}, got)
}

func TestFilterElementsDoesNotDescendIntoChildren(t *testing.T) {
	nodes := Parse(`<div><p class="x">nested</p></div><p class="x">top</p>`)
	got := FilterElements(nodes, func(n *Node) bool {
		return len(GetClassList(n)) > 0
	})
	require.Len(t, got, 1)
	assert.Equal(t, "top", TextContent(got[0]))
}

func TestFilterMapElementsDoesNotDescendIntoChildren(t *testing.T) {
	nodes := Parse(`<div><p id="nested">x</p></div><p id="top">y</p>`)
	got := FilterMapElements(nodes, func(n *Node) (string, bool) {
		id := GetID(n)
		return id, id != ""
	})
	assert.Equal(t, []string{"top"}, got)
}

func TestTextContentSkipsComments(t *testing.T) {
	nodes := Parse(`<p>a<!-- skip me -->b<span>c</span></p>`)
	require.Len(t, nodes, 1)
	assert.Equal(t, "abc", TextContent(&nodes[0]))
}
