package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvmauto/partsbot/internal/domain/parts"
)

func TestPartKeyboardTargetsThePart(t *testing.T) {
	row := partKeyboard(parts.Part{ID: "p1", Name: "Oil Filter"})
	require.Len(t, row, 2)
	assert.Equal(t, "inv:edit:p1", *row[0].CallbackData)
	assert.Equal(t, "inv:del:p1", *row[1].CallbackData)
}
