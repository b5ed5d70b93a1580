package segments

import (
	"strings"
)

// Level addresses one step of a nested segment lookup: split on Sep, take
// the segment at Index.
type Level struct {
	Sep   string
	Index int
}

// Parts splits s on the exact separator, keeping empty segments produced
// by leading, trailing or repeated separators.
func Parts(s, sep string) []string {
	return strings.Split(s, sep)
}

// Segments splits s on the separator and drops empty segments.
func Segments(s, sep string) []string {
	parts := strings.Split(s, sep)
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// Head returns everything before the first separator, or the whole string
// when the separator is absent.
func Head(s, sep string) string {
	if head, _, found := strings.Cut(s, sep); found {
		return head
	}
	return s
}

// Tail returns everything after the first separator, or an empty string
// when the separator is absent.
func Tail(s, sep string) string {
	parts := strings.Split(s, sep)
	return strings.Join(parts[1:], sep)
}

// First returns the first segment, skipping over an initial separator.
func First(s, sep string) string {
	if strings.HasPrefix(s, sep) && len(s) > len(sep) {
		return Head(s[len(sep):], sep)
	}
	return Head(s, sep)
}

// RemainderEnd returns everything after the first non-initial separator.
func RemainderEnd(s, sep string) string {
	if strings.HasPrefix(s, sep) && len(s) > len(sep) {
		return Tail(s[len(sep):], sep)
	}
	return Tail(s, sep)
}

// End returns the last segment, whether empty or not.
func End(s, sep string) string {
	parts := strings.Split(s, sep)
	return parts[len(parts)-1]
}

// Last returns the last segment, skipping over a final separator.
func Last(s, sep string) string {
	if strings.HasSuffix(s, sep) && len(s) > len(sep) {
		return End(s[:len(s)-len(sep)], sep)
	}
	return End(s, sep)
}

// RemainderStart returns everything before the last segment, skipping over
// a final separator.
func RemainderStart(s, sep string) string {
	trimmed := s
	if strings.HasSuffix(trimmed, sep) && len(trimmed) > len(sep) {
		trimmed = trimmed[:len(trimmed)-len(sep)]
	}
	start, _ := StartEnd(trimmed, sep)
	return start
}

// At returns the non-empty segment at index. Negative indices count from
// the end, so -1 addresses the last segment.
func At(s, sep string, index int) (string, bool) {
	segs := Segments(s, sep)
	if index < 0 {
		index += len(segs)
	}
	if index < 0 || index >= len(segs) {
		return "", false
	}
	return segs[index], true
}

// Inner resolves a nested segment by applying each level in turn to the
// result of the previous one.
func Inner(s string, levels []Level) (string, bool) {
	if len(levels) == 0 {
		return "", false
	}
	current := s
	found := false
	for _, level := range levels {
		if current == "" {
			break
		}
		seg, ok := At(current, level.Sep, level.Index)
		if !ok {
			return "", false
		}
		current, found = seg, true
	}
	return current, found
}

// HeadTail splits s once on the separator. When the separator is absent
// the head is empty and the tail holds the whole string.
func HeadTail(s, sep string) (head, tail string) {
	if h, t, found := strings.Cut(s, sep); found {
		return h, t
	}
	return "", s
}

// StartEnd splits s on the last occurrence of the separator. When the
// separator is absent the start holds the whole string and the end is
// empty.
func StartEnd(s, sep string) (start, end string) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}
