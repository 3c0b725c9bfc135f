package diary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	item := NewMenuItem("Notes", "note")
	assert.True(t, item.HasDivider)
	assert.False(t, item.IsHeader)

	header := NewMenuHeader("Sections")
	assert.True(t, header.IsHeader)
}

func TestDefaultMenuItems_Localised(t *testing.T) {
	t.Cleanup(func() { _ = SetLocale("en") })

	require.NoError(t, SetLocale("en"))
	items := DefaultMenuItems()
	require.Len(t, items, 4)
	assert.True(t, items[0].IsHeader)
	assert.Equal(t, "All notes", items[1].Title)
	assert.Equal(t, "Diary", DefaultToolbarTitle())

	require.NoError(t, SetLocale("ru"))
	assert.Equal(t, "Дневник", DefaultToolbarTitle())
	assert.Equal(t, "Настройки", DefaultMenuItems()[3].Title)
}
