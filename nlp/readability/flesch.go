// Package readability computes the Flesch reading-ease score.
//
// Words are whitespace-separated runs with punctuation removed. Sentences
// are runs of text terminated by '.', '!' or '?'; sentences of two words or
// fewer are not counted, and at least one sentence is always assumed.
// Syllables are estimated from vowel groups.
package readability

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/poiesic/lingcomp/nlp"
)

const (
	fleschBase          = 206.835
	fleschSentenceScale = 1.015
	fleschSyllableScale = 84.6
	minSentenceWords    = 3
)

var sentencePattern = regexp.MustCompile(`\b[^.!?]+[.!?]*`)

// Scorer implements nlp.ReadabilityScorer.
type Scorer struct{}

var _ nlp.ReadabilityScorer = Scorer{}

// NewScorer returns a Flesch scorer.
func NewScorer() Scorer {
	return Scorer{}
}

// FleschReadingEase returns the score rounded to two decimals.
func (Scorer) FleschReadingEase(text string) (float64, error) {
	return Score(text), nil
}

// Score computes 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
func Score(text string) float64 {
	words := Words(text)
	var asl, asw float64
	if len(words) > 0 {
		syllables := 0
		for _, w := range words {
			syllables += Syllables(w)
		}
		asl = float64(len(words)) / float64(SentenceCount(text))
		asw = float64(syllables) / float64(len(words))
	}
	score := fleschBase - fleschSentenceScale*asl - fleschSyllableScale*asw
	return math.Round(score*100) / 100
}

// Words splits text on whitespace and strips punctuation, dropping empty words.
func Words(text string) []string {
	var words []string
	for _, field := range strings.Fields(text) {
		w := strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				return -1
			}
			return r
		}, field)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// SentenceCount counts sentences with at least three words, minimum one.
func SentenceCount(text string) int {
	count := 0
	for _, s := range sentencePattern.FindAllString(text, -1) {
		if len(Words(s)) >= minSentenceWords {
			count++
		}
	}
	return max(count, 1)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Syllables estimates the syllable count of a single word.
func Syllables(word string) int {
	var letters []rune
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range letters {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// silent trailing e, except consonant + "le" as in "table"
	n := len(letters)
	if n > 2 && letters[n-1] == 'e' && !isVowel(letters[n-2]) {
		if !(letters[n-2] == 'l' && !isVowel(letters[n-3])) {
			count--
		}
	}
	return max(count, 1)
}
