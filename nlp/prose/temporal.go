package prose

import (
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/poiesic/lingcomp/nlp"
)

var clockPattern = regexp.MustCompile(`(?i)(\d(:\d\d)?\s*(a\.?m\.?|p\.?m\.?)\b|:\d\d|\bnoon\b|\bmidnight\b|o'clock)`)

// durationPattern matches spans such as "30 minutes" or "two weeks", which
// the when rules only pick up after "in" or "within".
var durationPattern = regexp.MustCompile(`(?i)\b(?:\d+|a few|several|one|two|three|four|five|six|seven|eight|nine|ten|fifteen|twenty|thirty|forty|forty-five|sixty|ninety)\s+(seconds?|minutes?|mins?|hours?|hrs?|days?|weeks?|months?|years?)\b`)

var monthNames = map[string]bool{
	"january": true, "jan": true, "february": true, "feb": true, "march": true, "mar": true,
	"april": true, "apr": true, "may": true, "june": true, "jun": true, "july": true, "jul": true,
	"august": true, "aug": true, "september": true, "sep": true, "sept": true, "october": true,
	"oct": true, "november": true, "nov": true, "december": true, "dec": true,
}

var weekdayAbbreviations = map[string]bool{
	"sun": true, "mon": true, "tue": true, "wed": true, "thu": true, "thur": true, "fri": true, "sat": true,
}

// A bare month name counts as a date only after one of these words.
var monthLeadWords = map[string]bool{
	"in": true, "by": true, "until": true, "till": true, "since": true, "during": true, "before": true,
	"after": true, "of": true, "this": true, "next": true, "last": true, "early": true, "late": true,
	"mid": true, "through": true, "every": true, "each": true,
}

// temporalRecognizer finds date and time expressions with the when parser.
// The parser is not safe for concurrent use so calls are serialized.
type temporalRecognizer struct {
	mu     sync.Mutex
	parser *when.Parser
}

func newTemporalRecognizer() *temporalRecognizer {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &temporalRecognizer{parser: w}
}

// find returns the temporal entities of text. tokens are the tagged tokens of
// the same text and are used to reject month names that act as verbs or modals.
func (r *temporalRecognizer) find(text string, tokens []nlp.Token, base time.Time) ([]nlp.Entity, error) {
	var (
		entities []nlp.Entity
		covered  [][2]int
	)

	// when reports one cluster per call; keep parsing after each one.
	for offset := 0; offset < len(text); {
		r.mu.Lock()
		res, err := r.parser.Parse(text[offset:], base)
		r.mu.Unlock()
		if err != nil {
			return entities, err
		}
		if res == nil || res.Index < 0 {
			break
		}

		start, span := trimSpan(offset+res.Index, res.Text)
		if span == "" {
			offset += res.Index + len(res.Text)
			continue
		}
		end := start + len(span)
		if acceptSpan(text, start, span, tokens) {
			entities = append(entities, nlp.Entity{Text: span, Label: temporalLabel(span)})
			covered = append(covered, [2]int{start, end})
		}
		offset = end
	}

	for _, loc := range durationPattern.FindAllStringSubmatchIndex(text, -1) {
		if overlaps(covered, loc[0], loc[1]) {
			continue
		}
		unit := strings.ToLower(text[loc[2]:loc[3]])
		label := nlp.EntityDate
		if strings.HasPrefix(unit, "sec") || strings.HasPrefix(unit, "min") || strings.HasPrefix(unit, "h") {
			label = nlp.EntityTime
		}
		entities = append(entities, nlp.Entity{Text: text[loc[0]:loc[1]], Label: label})
	}
	return entities, nil
}

// trimSpan strips the separators the when rules include around a match.
func trimSpan(start int, span string) (int, string) {
	isEdge := func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) }
	trimmed := strings.TrimLeftFunc(span, isEdge)
	start += len(span) - len(trimmed)
	return start, strings.TrimRightFunc(trimmed, isEdge)
}

// acceptSpan filters single-word matches that are not dates in context:
// the deictic "now", month names used as verbs or modals ("May you...",
// "March forward") and lowercase weekday abbreviations ("the sun").
func acceptSpan(text string, start int, span string, tokens []nlp.Token) bool {
	if len(strings.Fields(span)) != 1 {
		return true
	}
	lower := strings.ToLower(strings.TrimSuffix(span, "."))
	switch {
	case lower == "now":
		return false
	case monthNames[lower]:
		if tag := tagOf(tokens, span); tag == "MD" || isVerbTag(tag) {
			return false
		}
		return monthLeadWords[previousWord(text[:start])]
	case weekdayAbbreviations[lower]:
		return span != lower
	}
	return true
}

func tagOf(tokens []nlp.Token, word string) string {
	for _, tok := range tokens {
		if tok.Text == word {
			return tok.Tag
		}
	}
	return ""
}

func previousWord(prefix string) string {
	fields := strings.Fields(prefix)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimFunc(fields[len(fields)-1], func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
}

func overlaps(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start < s[1] && s[0] < end {
			return true
		}
	}
	return false
}

func temporalLabel(span string) string {
	if clockPattern.MatchString(span) {
		return nlp.EntityTime
	}
	return nlp.EntityDate
}
