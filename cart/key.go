package cart

import (
	"sort"
	"strings"
)

// keySeparator joins an item id and its note into a composite key. It is a
// reserved character: annotation texts never contain it, so the item id is
// always recoverable by splitting at the first occurrence.
const keySeparator = "|"

// noteDelimiter joins individual annotations inside a note.
const noteDelimiter = "、"

// NormalizeNote builds the canonical note string from the tapped common
// annotations plus optional free text. Common annotations are sorted so the
// same set always yields the same note regardless of tap order; free text
// is appended last.
func NormalizeNote(selected []string, custom string) string {
	notes := make([]string, len(selected))
	copy(notes, selected)
	sort.Strings(notes)
	if custom = strings.TrimSpace(custom); custom != "" {
		notes = append(notes, custom)
	}
	return strings.Join(notes, noteDelimiter)
}

// BuildKey derives the composite key for a cart line. An empty note yields
// the bare item id, so plain lines merge across surfaces that never set
// notes.
func BuildKey(itemID, note string) string {
	if note == "" {
		return itemID
	}
	return itemID + keySeparator + note
}

// SplitKey recovers the item id and note from a composite key.
func SplitKey(key string) (itemID, note string) {
	if i := strings.Index(key, keySeparator); i >= 0 {
		return key[:i], key[i+len(keySeparator):]
	}
	return key, ""
}
