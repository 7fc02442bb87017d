package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetNonEmptyTrimsValue(t *testing.T) {
	n := Node{}

	n.SetNonEmpty("telephone", "  +81-3-0000-0000  ")
	assert.Equal(t, "+81-3-0000-0000", n["telephone"])

	n.SetNonEmpty("priceRange", "   ")
	_, ok := n["priceRange"]
	assert.False(t, ok)

	n.SetNonEmpty("hasMap", "")
	_, ok = n["hasMap"]
	assert.False(t, ok)
}

func TestTypeAndHasType(t *testing.T) {
	single := Node{"@type": "WebPage"}
	assert.Equal(t, []string{"WebPage"}, single.Type())
	assert.True(t, single.HasType("WebPage"))

	multi := Node{"@type": []string{"WebPage", "HomePage"}}
	assert.True(t, multi.HasType("HomePage"))
	assert.False(t, multi.HasType("CollectionPage"))

	decoded := Node{"@type": []any{"WebPage", "ProfilePage"}}
	assert.Equal(t, []string{"WebPage", "ProfilePage"}, decoded.Type())

	assert.Nil(t, Node{}.Type())
}
