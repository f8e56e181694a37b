package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ivan_petrov", "@ivan_petrov"},
		{"@ivan", "@ivan"},
		{"Ivan Petrov", "Ivan Petrov"},
		{"ivan-petrov", "@ivan-petrov"},
		{"иван", "@иван"},
		{"bob2", "@bob2"},
		{"ivan.petrov", "ivan.petrov"},
		{"-", "-"},
		{"", ""},
		{Unspecified, Unspecified},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHandle(tt.input))
		})
	}
}

func TestFirstMention(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		mentions   []Mention
		wantHandle string
		wantName   string
		wantOK     bool
	}{
		{
			name:       "handle entity",
			text:       "Задание: отчёт для @carol",
			mentions:   []Mention{{Kind: MentionHandle, Offset: 19, Length: 6}},
			wantHandle: "@carol",
			wantOK:     true,
		},
		{
			name:       "offsets count utf16 units",
			text:       "🔥 @dave срочно",
			mentions:   []Mention{{Kind: MentionHandle, Offset: 3, Length: 5}},
			wantHandle: "@dave",
			wantOK:     true,
		},
		{
			name:       "text mention with username",
			text:       "Опоздал Пётр",
			mentions:   []Mention{{Kind: MentionUser, Offset: 8, Length: 4, Username: "petr", FirstName: "Пётр"}},
			wantHandle: "@petr",
			wantName:   "Пётр",
			wantOK:     true,
		},
		{
			name:       "text mention without username",
			text:       "Опоздал Пётр",
			mentions:   []Mention{{Kind: MentionUser, Offset: 8, Length: 4, FirstName: "Пётр"}},
			wantHandle: "Пётр",
			wantName:   "Пётр",
			wantOK:     true,
		},
		{
			name: "first annotation wins",
			text: "@anna и @boris",
			mentions: []Mention{
				{Kind: MentionHandle, Offset: 0, Length: 5},
				{Kind: MentionHandle, Offset: 8, Length: 6},
			},
			wantHandle: "@anna",
			wantOK:     true,
		},
		{
			name:     "out of range entity is skipped",
			text:     "hello",
			mentions: []Mention{{Kind: MentionHandle, Offset: 3, Length: 10}},
		},
		{
			name:       "inline token without annotations",
			text:       "Task: review\nDeadline: 01.02.2025\nping @carol please",
			wantHandle: "@carol",
			wantOK:     true,
		},
		{
			name: "email is not a mention",
			text: "write to bob@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle, name, ok := FirstMention(tt.text, tt.mentions)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantHandle, handle)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
