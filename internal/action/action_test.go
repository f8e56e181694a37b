package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		data string
		want Action
	}{
		{"main_menu", Of(MainMenu)},
		{"help", Of(Help)},
		{"add_task", Of(AddTask)},
		{"list_all", Of(ListAll)},
		{"list_active", Of(ListActive)},
		{"list_done", Of(ListDone)},
		{"list_overdue", Of(ListOverdue)},
		{"add_late", Of(AddLate)},
		{"list_late", Of(ListLate)},
		{"complete_12", CompleteTask(12)},
		{"delete_7", DeleteTask(7)},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := Parse(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.data, got.Data())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("complete_abc")
	assert.ErrorIs(t, err, ErrNonNumericID)

	_, err = Parse("delete_")
	assert.ErrorIs(t, err, ErrNonNumericID)

	_, err = Parse("delete_-3")
	assert.ErrorIs(t, err, ErrNonNumericID)

	_, err = Parse("archive_3")
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = ParseID("4x")
	assert.ErrorIs(t, err, ErrNonNumericID)
}
