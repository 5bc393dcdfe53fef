package speedreading

import "unicode"

// ResolveAnchor picks the anchor character of token and splits the token
// around it. The anchor sits in the middle of the word's letters and digits,
// ignoring punctuation on either side; tokens without any word character are
// anchored on their own midpoint. Even-length cores anchor just right of the
// true centre.
func ResolveAnchor(token string) Layout {
	if token == "" {
		return Layout{Index: -1}
	}

	offsets, runes := splitRunes(token)
	idx := anchorIndex(runes)
	return Layout{
		Before: token[:offsets[idx]],
		Anchor: token[offsets[idx]:offsets[idx+1]],
		After:  token[offsets[idx+1]:],
		Index:  idx,
	}
}

// splitRunes decodes s and returns the byte offset of every rune plus a
// final len(s). Invalid bytes decode as utf8.RuneError one byte at a time,
// so slicing on the offsets never loses input.
func splitRunes(s string) ([]int, []rune) {
	offsets := make([]int, 0, len(s)+1)
	runes := make([]rune, 0, len(s))
	for i, r := range s {
		offsets = append(offsets, i)
		runes = append(runes, r)
	}
	return append(offsets, len(s)), runes
}

// AnchorIndex returns the rune offset ResolveAnchor would anchor token on.
// It returns 0 for the empty token.
func AnchorIndex(token string) int {
	if token == "" {
		return 0
	}
	_, runes := splitRunes(token)
	return anchorIndex(runes)
}

func anchorIndex(runes []rune) int {
	startIdx := 0
	for startIdx < len(runes) && !isWordRune(runes[startIdx]) {
		startIdx++
	}

	endIdx := len(runes) - 1
	for endIdx >= 0 && !isWordRune(runes[endIdx]) {
		endIdx--
	}

	// Only punctuation: fall back to the middle of the whole token.
	if startIdx > endIdx {
		return len(runes) / 2
	}

	coreLength := endIdx - startIdx + 1
	return startIdx + coreLength/2
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
