// Package rules holds the condition inference table: ordered symptom-set
// patterns mapped to localized conditions, advice and a safety level.
package rules

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/nens2012/life-aid-nexus/internal/models"
)

// QualifierKind enumerates the conditions a Variant can depend on.
type QualifierKind int

const (
	QualAgeAbove QualifierKind = iota + 1
	QualGender
	QualHistory
)

// Qualifier selects extra advice from user facts.
type Qualifier struct {
	Kind    QualifierKind
	Age     int
	Gender  models.Gender
	History models.HistoryID
}

func AgeAbove(n int) Qualifier { return Qualifier{Kind: QualAgeAbove, Age: n} }
func GenderIs(g models.Gender) Qualifier { return Qualifier{Kind: QualGender, Gender: g} }
func HasHistory(h models.HistoryID) Qualifier { return Qualifier{Kind: QualHistory, History: h} }

func (q Qualifier) Matches(f models.ExtractedFacts) bool {
	switch q.Kind {
	case QualAgeAbove:
		return f.AgeAbove(q.Age)
	case QualGender:
		return f.Gender == q.Gender
	case QualHistory:
		return f.HasHistory(q.History)
	default:
		return false
	}
}

func (q Qualifier) String() string {
	switch q.Kind {
	case QualAgeAbove:
		return fmt.Sprintf("age>%d", q.Age)
	case QualGender:
		return "gender=" + string(q.Gender)
	case QualHistory:
		return "history=" + string(q.History)
	default:
		return fmt.Sprintf("Qualifier(%d)", int(q.Kind))
	}
}

// Bundle is a rule's text in one language.
type Bundle struct {
	Conditions     []string
	Advice         []string
	WhenToSeekHelp []string
}

// Variant appends one advice line when its qualifier holds.
type Variant struct {
	When   Qualifier
	Advice map[models.Language]string
}

type Rule struct {
	ID         string
	Pattern    []models.SymptomID
	Level      models.SafetyLevel
	Confidence float64
	Text       map[models.Language]Bundle
	Variants   []Variant
}

// IsFallback reports whether the rule matches every input.
func (r *Rule) IsFallback() bool { return len(r.Pattern) == 0 }

// Matches reports whether every pattern symptom is present.
func (r *Rule) Matches(f models.ExtractedFacts) bool {
	for _, s := range r.Pattern {
		if !f.HasSymptom(s) {
			return false
		}
	}
	return true
}

// Resolved is a rule's output for one turn. All slices are freshly allocated.
type Resolved struct {
	RuleID         string
	Level          models.SafetyLevel
	Confidence     float64
	Language       models.Language
	Conditions     []string
	Advice         []string
	WhenToSeekHelp []string
	// Degraded is set when lang had no bundle and the default language was used.
	Degraded bool
}

// Resolve localizes the rule and appends every matching variant's advice in
// declaration order.
func (r *Rule) Resolve(lang models.Language, f models.ExtractedFacts) Resolved {
	b, ok := r.Text[lang]
	out := Resolved{RuleID: r.ID, Level: r.Level, Confidence: r.Confidence, Language: lang}
	if !ok {
		b = r.Text[models.DefaultLanguage]
		out.Language = models.DefaultLanguage
		out.Degraded = true
	}
	out.Conditions = slices.Clone(b.Conditions)
	out.Advice = slices.Clone(b.Advice)
	out.WhenToSeekHelp = slices.Clone(b.WhenToSeekHelp)

	for _, v := range r.Variants {
		if !v.When.Matches(f) {
			continue
		}
		text, ok := v.Advice[out.Language]
		if !ok {
			text = v.Advice[models.DefaultLanguage]
		}
		if text != "" {
			out.Advice = append(out.Advice, text)
		}
	}
	return out
}

// Table is an immutable, validated rule list in evaluation order.
type Table struct {
	rules []Rule
}

// NewTable copies rules, orders them most specific first (stable for equal
// pattern sizes) and validates the result.
func NewTable(rules []Rule) (*Table, error) {
	ordered := make([]Rule, len(rules))
	for i, r := range rules {
		r.Pattern = models.SortedSet(r.Pattern)
		ordered[i] = r
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Pattern) > len(ordered[j].Pattern)
	})

	t := &Table{rules: ordered}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Match returns the first rule whose pattern is a subset of the facts'
// symptoms. The fallback guarantees a result.
func (t *Table) Match(f models.ExtractedFacts) *Rule {
	for i := range t.rules {
		if t.rules[i].Matches(f) {
			return &t.rules[i]
		}
	}
	return &t.rules[len(t.rules)-1]
}

// Rules returns the rules in evaluation order.
func (t *Table) Rules() []Rule {
	return slices.Clone(t.rules)
}

// Lookup finds a rule by id.
func (t *Table) Lookup(id string) (*Rule, bool) {
	for i := range t.rules {
		if t.rules[i].ID == id {
			return &t.rules[i], true
		}
	}
	return nil, false
}

// Validate returns every problem found, joined.
func (t *Table) Validate() error {
	var errs []error
	if len(t.rules) == 0 {
		return errors.New("rule table is empty")
	}

	seen := make(map[string]bool, len(t.rules))
	fallbacks := 0
	for i := range t.rules {
		r := &t.rules[i]
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("rule %d has no id", i))
		}
		if seen[r.ID] {
			errs = append(errs, fmt.Errorf("rule %q declared twice", r.ID))
		}
		seen[r.ID] = true

		if r.IsFallback() {
			fallbacks++
		}
		if r.Confidence <= 0 || r.Confidence > 1 {
			errs = append(errs, fmt.Errorf("rule %q: confidence %v outside (0,1]", r.ID, r.Confidence))
		}
		if r.Level != models.SafetySafe && r.Level != models.SafetyCaution {
			errs = append(errs, fmt.Errorf("rule %q: level %s not allowed", r.ID, r.Level))
		}
		errs = append(errs, validateText(r)...)

		for j := 0; j < i; j++ {
			if isSubset(t.rules[j].Pattern, r.Pattern) {
				errs = append(errs, fmt.Errorf("rule %q is shadowed by %q", r.ID, t.rules[j].ID))
				break
			}
		}
	}

	switch {
	case fallbacks == 0:
		errs = append(errs, errors.New("no fallback rule"))
	case fallbacks > 1:
		errs = append(errs, fmt.Errorf("%d fallback rules, want 1", fallbacks))
	case !t.rules[len(t.rules)-1].IsFallback():
		errs = append(errs, errors.New("fallback rule is not last"))
	}
	return errors.Join(errs...)
}

func validateText(r *Rule) []error {
	var errs []error
	ref, hasRef := r.Text[models.DefaultLanguage]
	for _, lang := range models.SupportedLanguages {
		b, ok := r.Text[lang]
		if !ok {
			errs = append(errs, fmt.Errorf("rule %q: missing %s text", r.ID, lang))
			continue
		}
		if len(b.Conditions) == 0 || len(b.Advice) == 0 || len(b.WhenToSeekHelp) == 0 {
			errs = append(errs, fmt.Errorf("rule %q: incomplete %s text", r.ID, lang))
		}
		if hasRef && (len(b.Conditions) != len(ref.Conditions) || len(b.Advice) != len(ref.Advice) ||
			len(b.WhenToSeekHelp) != len(ref.WhenToSeekHelp)) {
			errs = append(errs, fmt.Errorf("rule %q: %s text does not line up with %s", r.ID, lang, models.DefaultLanguage))
		}
	}
	for _, v := range r.Variants {
		if v.When.Kind < QualAgeAbove || v.When.Kind > QualHistory {
			errs = append(errs, fmt.Errorf("rule %q: invalid qualifier", r.ID))
		}
		for _, lang := range models.SupportedLanguages {
			if v.Advice[lang] == "" {
				errs = append(errs, fmt.Errorf("rule %q: variant %s missing %s advice", r.ID, v.When, lang))
			}
		}
	}
	return errs
}

// isSubset reports whether every element of a is in b.
func isSubset(a, b []models.SymptomID) bool {
	for _, s := range a {
		if !slices.Contains(b, s) {
			return false
		}
	}
	return true
}
