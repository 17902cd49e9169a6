// Package safety is the single gate every turn passes before inference. It
// grades a turn safe, caution or urgent from extracted facts and raw phrases.
package safety

import (
	"fmt"
	"strings"

	"github.com/nens2012/life-aid-nexus/internal/extract"
	"github.com/nens2012/life-aid-nexus/internal/models"
)

// Verdict is the most severe level found plus the triggers that produced it.
type Verdict struct {
	Level   models.SafetyLevel `json:"level"`
	Reasons []string           `json:"reasons"`
}

func (v Verdict) Urgent() bool { return v.Level == models.SafetyUrgent }

// raise escalates the verdict; it never lowers the level.
func (v *Verdict) raise(level models.SafetyLevel, reason string) {
	v.Level = models.MaxSafety(v.Level, level)
	v.Reasons = append(v.Reasons, reason)
}

// Combination is a symptom set that is urgent only when all members occur.
type Combination struct {
	Name     string
	Symptoms []models.SymptomID
}

// Rules is the immutable pattern set the classifier evaluates.
type Rules struct {
	UrgentSymptoms []models.SymptomID
	Combinations   []Combination
	UrgentPhrases  map[models.Language][]string
	CautionPhrases map[models.Language][]string
	CautionHistory []models.HistoryID
}

// Validate checks that phrase tables cover every supported language.
func (r *Rules) Validate() error {
	for _, lang := range models.SupportedLanguages {
		if len(r.UrgentPhrases[lang]) == 0 {
			return fmt.Errorf("no urgent phrases for %s", lang)
		}
		if len(r.CautionPhrases[lang]) == 0 {
			return fmt.Errorf("no caution phrases for %s", lang)
		}
	}
	for _, c := range r.Combinations {
		if len(c.Symptoms) < 2 {
			return fmt.Errorf("combination %q needs at least two symptoms", c.Name)
		}
	}
	return nil
}

// Classifier is stateless; Classify is idempotent.
type Classifier struct {
	rules *Rules
}

func New(rules *Rules) (*Classifier, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid safety rules: %w", err)
	}
	return &Classifier{rules: rules}, nil
}

var defaultClassifier = func() *Classifier {
	c, err := New(DefaultRules())
	if err != nil {
		panic(err)
	}
	return c
}()

func Default() *Classifier { return defaultClassifier }

// Classify runs the default classifier.
func Classify(text string, facts models.ExtractedFacts) Verdict {
	return defaultClassifier.Classify(text, facts)
}

// Classify inspects facts and the raw text. Phrases of every language are
// checked regardless of the declared language.
func (c *Classifier) Classify(text string, facts models.ExtractedFacts) Verdict {
	v := Verdict{Level: models.SafetySafe, Reasons: []string{}}
	norm := extract.Normalize(text)

	for _, s := range c.rules.UrgentSymptoms {
		if facts.HasSymptom(s) {
			v.raise(models.SafetyUrgent, "symptom:"+string(s))
		}
	}
	for _, combo := range c.rules.Combinations {
		if hasAll(facts, combo.Symptoms) {
			v.raise(models.SafetyUrgent, "combination:"+combo.Name)
		}
	}
	for _, p := range matchPhrases(norm, c.rules.UrgentPhrases) {
		v.raise(models.SafetyUrgent, "phrase:"+p)
	}
	for _, p := range matchPhrases(norm, c.rules.CautionPhrases) {
		v.raise(models.SafetyCaution, "phrase:"+p)
	}
	for _, h := range c.rules.CautionHistory {
		if facts.HasHistory(h) {
			v.raise(models.SafetyCaution, "history:"+string(h))
		}
	}
	return v
}

func hasAll(facts models.ExtractedFacts, symptoms []models.SymptomID) bool {
	for _, s := range symptoms {
		if !facts.HasSymptom(s) {
			return false
		}
	}
	return true
}

func matchPhrases(norm string, phrases map[models.Language][]string) []string {
	if norm == "" {
		return nil
	}
	var out []string
	for _, lang := range models.SupportedLanguages {
		for _, p := range phrases[lang] {
			if strings.Contains(norm, p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// DefaultRules returns the built-in pattern set. It must not be modified.
func DefaultRules() *Rules { return defaultRules }

var defaultRules = &Rules{
	UrgentSymptoms: []models.SymptomID{
		models.SymptomChestPain,
		models.SymptomBreathlessness,
		models.SymptomHeavyBleeding,
		models.SymptomUnconsciousness,
		models.SymptomSelfHarm,
		models.SymptomSeizure,
		models.SymptomStrokeSigns,
	},
	Combinations: []Combination{
		{Name: "fever+rash", Symptoms: []models.SymptomID{models.SymptomFever, models.SymptomRash}},
		{Name: "headache+vision_change", Symptoms: []models.SymptomID{models.SymptomHeadache, models.SymptomVisionChange}},
	},
	UrgentPhrases: map[models.Language][]string{
		models.LangEnglish:  {"severe pain", "not breathing", "overdose", "poisoned", "choking", "coughing up blood", "vomiting blood"},
		models.LangHindi:    {"तेज दर्द", "ज़हर", "जहर खा", "खून की उल्टी"},
		models.LangGujarati: {"તીવ્ર દુખાવો", "ઝેર", "લોહીની ઉલટી"},
	},
	CautionPhrases: map[models.Language][]string{
		models.LangEnglish:  {"severe", "worsening", "getting worse", "high fever", "persistent", "for weeks", "blood in"},
		models.LangHindi:    {"गंभीर", "बढ़ता जा रहा", "तेज बुखार", "लगातार"},
		models.LangGujarati: {"ગંભીર", "વધતો જાય", "ઊંચો તાવ", "સતત"},
	},
	CautionHistory: []models.HistoryID{models.HistoryPregnancy},
}
