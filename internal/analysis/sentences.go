package analysis

import "strings"

// isTerminator reports whether b ends a sentence.
func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// SplitSegments splits text into sentence-sized segments whose
// concatenation equals text exactly. A segment ends after the
// whitespace run that follows '.', '!' or '?', or after a newline
// run (paragraph boundary). Trailing whitespace stays attached to
// the preceding segment so offsets into the original text survive
// re-assembly.
func SplitSegments(text string) []string {
	if text == "" {
		return nil
	}

	var segments []string
	start := 0
	i := 0
	n := len(text)

	for i < n {
		boundary := false
		if isTerminator(text[i]) && i+1 < n && isSpace(text[i+1]) {
			boundary = true
		} else if text[i] == '\n' {
			boundary = true
		}

		if boundary {
			// Consume the whitespace run following the boundary.
			j := i + 1
			for j < n && isSpace(text[j]) {
				j++
			}
			segments = append(segments, text[start:j])
			start = j
			i = j
			continue
		}
		i++
	}

	if start < n {
		segments = append(segments, text[start:])
	}

	return segments
}

// Sentences splits text into trimmed, non-empty sentences. Used where
// callers count words rather than track offsets (atomic answers,
// summaries, highlights).
func Sentences(text string) []string {
	segments := SplitSegments(text)
	sentences := make([]string, 0, len(segments))
	for _, seg := range segments {
		if s := strings.TrimSpace(seg); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
