package htmlkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVoid(t *testing.T) {
	assert.True(t, isVoid("br"))
	assert.True(t, isVoid("input"))
	assert.False(t, isVoid("div"))
}

func TestIsRawText(t *testing.T) {
	assert.True(t, isRawText("script"))
	assert.True(t, isRawText("style"))
	assert.False(t, isRawText("pre"))
}

func TestIsInvalidNest(t *testing.T) {
	tests := []struct {
		parent, child string
		want          bool
	}{
		{"", "div", false},
		{"li", "li", true},
		{"li", "div", false},
		{"p", "div", true},
		{"p", "span", false},
		{"dt", "dd", true},
		{"dd", "dt", true},
		{"optgroup", "optgroup", true},
		{"option", "optgroup", true},
		{"option", "option", true},
		{"colgroup", "col", false},
		{"colgroup", "div", true},
		{"caption", "col", true},
		{"caption", "anything", true},
		{"thead", "tbody", true},
		{"thead", "tr", false},
		{"tbody", "table", true},
		{"tbody", "tbody", true},
		{"tfoot", "table", true},
		{"tr", "tr", true},
		{"tr", "td", false},
		{"td", "td", true},
		{"td", "th", true},
		{"th", "tr", true},
		{"head", "body", true},
		{"head", "title", false},
	}
	for _, tt := range tests {
		t.Run(tt.parent+"/"+tt.child, func(t *testing.T) {
			assert.Equal(t, tt.want, isInvalidNest(tt.parent, tt.child))
		})
	}
}
