package debugui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlayAddSkipsEmptyItems(t *testing.T) {
	overlay := NewOverlay(ImguiItem{Render: func() {}})
	overlay.Add(ImguiItem{}, ImguiItem{Render: func() {}})

	assert.Len(t, overlay.items, 2)
	assert.Equal(t, ImguiInputState{}, overlay.Input())
}
