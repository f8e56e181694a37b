package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Unspecified is stored as the assignee when a task names nobody.
const Unspecified = "Не указан"

// MentionKind tells how a mention annotation identifies the user.
type MentionKind int

const (
	// MentionHandle is an inline @username token located by offset and length.
	MentionHandle MentionKind = iota
	// MentionUser references a user without a public handle (Telegram text_mention).
	MentionUser
)

// Mention is a transport-neutral mention annotation. Offset and Length are in
// UTF-16 code units, the way Telegram reports message entities.
type Mention struct {
	Kind      MentionKind
	Offset    int
	Length    int
	Username  string
	FirstName string
}

var inlineHandle = regexp.MustCompile(`(?:^|[\s(,;])(@[\p{L}\p{N}_]+)`)

// NormalizeHandle turns a bare username into an @handle. Display names and
// values that already carry the prefix are returned as is.
func NormalizeHandle(raw string) string {
	if raw == "" || raw == Unspecified || strings.HasPrefix(raw, "@") {
		return raw
	}
	alnum := false
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			alnum = true
		case r != '_' && r != '-':
			return raw
		}
	}
	if !alnum {
		return raw
	}
	return "@" + raw
}

// FirstMention resolves the first mentioned user of a message. displayName is
// only known for MentionUser annotations.
func FirstMention(text string, mentions []Mention) (handle, displayName string, ok bool) {
	if len(mentions) == 0 {
		if m := inlineHandle.FindStringSubmatch(text); m != nil {
			return m[1], "", true
		}
		return "", "", false
	}
	for _, m := range mentions {
		switch m.Kind {
		case MentionHandle:
			if s := sliceUTF16(text, m.Offset, m.Length); s != "" {
				return s, "", true
			}
		case MentionUser:
			if m.Username != "" {
				return "@" + m.Username, m.FirstName, true
			}
			if m.FirstName != "" {
				return m.FirstName, m.FirstName, true
			}
		}
	}
	return "", "", false
}

func sliceUTF16(text string, offset, length int) string {
	units := utf16.Encode([]rune(text))
	if offset < 0 || length <= 0 || offset+length > len(units) {
		return ""
	}
	return string(utf16.Decode(units[offset : offset+length]))
}
