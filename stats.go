package speedreading

import (
	"time"
	"unicode/utf8"
)

// Stats summarises a text for a given reading speed.
type Stats struct {
	Words             int           `json:"words"`
	Characters        int           `json:"characters"`
	LongestWord       string        `json:"longestWord,omitempty"`
	AverageWordLength float64       `json:"averageWordLength"`
	Rate              int           `json:"wpm"`
	Duration          time.Duration `json:"duration"`
}

// Analyze counts the words of text and how long they take at wpm.
func Analyze(text string, wpm int) Stats {
	return analyzeTokens(Tokenize(text), wpm)
}

func analyzeTokens(tokens []string, wpm int) Stats {
	s := Stats{Words: len(tokens), Rate: wpm}
	longest := 0
	for _, tok := range tokens {
		n := utf8.RuneCountInString(tok)
		s.Characters += n
		if n > longest {
			longest = n
			s.LongestWord = tok
		}
	}
	if s.Words > 0 {
		s.AverageWordLength = float64(s.Characters) / float64(s.Words)
	}
	s.Duration = time.Duration(s.Words) * Interval(wpm)
	return s
}
