// Package extract turns free text into language-independent facts: age,
// gender, symptoms, intents, medical history and request modifiers.
package extract

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

const (
	MinAge = 1
	MaxAge = 120
)

var (
	ageRe      = regexp.MustCompile(`\b(\d{1,3})\s*-?\s*(?:(?:years?|yrs?|y/o|yo)\b|साल|वर्ष|વર્ષ|વરસ)`)
	durationRe = regexp.MustCompile(`\b(\d+)\s*-?\s*(?:(?:minutes?|mins?)\b|मिनट|મિનિટ)`)
)

// Extractor scans text against a Lexicon. It holds no mutable state and is
// safe for concurrent use.
type Extractor struct {
	lex      *Lexicon
	genderRe *regexp.Regexp
	genders  map[string]models.Gender
}

// New validates lex and prepares an Extractor for it.
func New(lex *Lexicon) (*Extractor, error) {
	if err := lex.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lexicon: %w", err)
	}

	genders := make(map[string]models.Gender)
	var ascii, other []string
	for _, t := range lex.Genders {
		for _, forms := range t.Surfaces {
			for _, s := range forms {
				genders[s] = t.ID
				if isASCII(s) {
					ascii = append(ascii, s)
				} else {
					other = append(other, s)
				}
			}
		}
	}

	pattern := alternation(ascii)
	if pattern != "" {
		pattern = `\b(?:` + pattern + `)\b`
	}
	if alt := alternation(other); alt != "" {
		if pattern != "" {
			pattern += "|"
		}
		pattern += alt
	}
	genderRe, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile gender pattern: %w", err)
	}

	return &Extractor{lex: lex, genderRe: genderRe, genders: genders}, nil
}

var defaultExtractor = mustNew(DefaultLexicon())

func mustNew(lex *Lexicon) *Extractor {
	e, err := New(lex)
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns the extractor over the built-in lexicon.
func Default() *Extractor { return defaultExtractor }

// Extract runs the default extractor.
func Extract(text string) models.ExtractedFacts {
	return defaultExtractor.Extract(text)
}

// Extract never fails: unrecognized or empty input yields unknown age and
// gender and empty sets.
func (e *Extractor) Extract(text string) models.ExtractedFacts {
	norm := Normalize(text)
	return models.ExtractedFacts{
		Age:             parseAge(norm),
		Gender:          e.gender(norm),
		Symptoms:        matchTerms(norm, e.lex.Symptoms),
		Intents:         matchTerms(norm, e.lex.Intents),
		History:         matchTerms(norm, e.lex.History),
		Modifiers:       matchTerms(norm, e.lex.Modifiers),
		DurationMinutes: parseDuration(norm),
	}
}

// MatchHistory maps free-form history entries ("Type 2 diabetes", "दमा") to
// canonical ids. Unrecognized entries are dropped.
func (e *Extractor) MatchHistory(entries []string) []models.HistoryID {
	var out []models.HistoryID
	for _, entry := range entries {
		out = append(out, matchTerms(Normalize(entry), e.lex.History)...)
	}
	return models.SortedSet(out)
}

// Normalize lowercases text, straightens quotes, maps Devanagari and Gujarati
// digits to ASCII and collapses whitespace.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		switch {
		case r == '’' || r == '‘' || r == '`':
			return '\''
		case r >= '०' && r <= '९':
			return '0' + (r - '०')
		case r >= '૦' && r <= '૯':
			return '0' + (r - '૦')
		}
		return r
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

func (e *Extractor) gender(norm string) models.Gender {
	m := e.genderRe.FindString(norm)
	if g, ok := e.genders[m]; ok && m != "" {
		return g
	}
	return models.GenderUnknown
}

func parseAge(norm string) *int {
	age := firstNumber(ageRe, norm)
	if age == nil || *age < MinAge || *age > MaxAge {
		return nil
	}
	return age
}

// parseDuration saturates oversized values so the caller can clamp them.
func parseDuration(norm string) *int {
	m := durationRe.FindStringSubmatch(norm)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if errors.Is(err, strconv.ErrRange) {
		n = math.MaxInt
	} else if err != nil {
		return nil
	}
	return &n
}

func firstNumber(re *regexp.Regexp, norm string) *int {
	m := re.FindStringSubmatch(norm)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

func matchTerms[T ~string](norm string, terms []Term[T]) []T {
	out := make([]T, 0)
	if norm == "" {
		return out
	}
	for _, t := range terms {
		if termMatches(norm, t) {
			out = append(out, t.ID)
		}
	}
	return models.SortedSet(out)
}

func termMatches[T ~string](norm string, t Term[T]) bool {
	for _, lang := range models.SupportedLanguages {
		for _, s := range t.Surfaces[lang] {
			if strings.Contains(norm, s) {
				return true
			}
		}
	}
	return false
}

// alternation joins quoted words longest first.
func alternation(words []string) string {
	if len(words) == 0 {
		return ""
	}
	sorted := append([]string(nil), words...)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
