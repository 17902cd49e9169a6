// Package inference wires extraction, safety classification, rule matching
// and response assembly into one pure call.
package inference

import (
	"fmt"

	"github.com/nens2012/life-aid-nexus/internal/assembler"
	"github.com/nens2012/life-aid-nexus/internal/catalog"
	"github.com/nens2012/life-aid-nexus/internal/extract"
	"github.com/nens2012/life-aid-nexus/internal/models"
	"github.com/nens2012/life-aid-nexus/internal/prompts"
	"github.com/nens2012/life-aid-nexus/internal/rules"
	"github.com/nens2012/life-aid-nexus/internal/safety"
)

// Result carries the intermediate stages alongside the response so callers
// can persist and audit a turn.
type Result struct {
	Facts    models.ExtractedFacts      `json:"facts"`
	Verdict  safety.Verdict             `json:"verdict"`
	RuleID   string                     `json:"rule_id,omitempty"`
	Response *models.StructuredResponse `json:"response"`
}

type options struct {
	lexicon     *extract.Lexicon
	safetyRules *safety.Rules
	rules       []rules.Rule
	phrases     *prompts.Phrasebook
	catalog     *catalog.Catalog
}

type Option func(*options)

func WithLexicon(l *extract.Lexicon) Option { return func(o *options) { o.lexicon = l } }
func WithSafetyRules(r *safety.Rules) Option { return func(o *options) { o.safetyRules = r } }
func WithRules(r []rules.Rule) Option { return func(o *options) { o.rules = r } }
func WithPhrasebook(p *prompts.Phrasebook) Option { return func(o *options) { o.phrases = p } }
func WithCatalog(c *catalog.Catalog) Option { return func(o *options) { o.catalog = c } }

// Engine is immutable and safe for concurrent use.
type Engine struct {
	extractor  *extract.Extractor
	classifier *safety.Classifier
	table      *rules.Table
	phrases    *prompts.Phrasebook
	assembler  *assembler.Assembler
}

// New builds an engine from the built-in tables unless overridden. Every
// table is validated; an invalid one fails construction.
func New(opts ...Option) (*Engine, error) {
	o := options{
		lexicon:     extract.DefaultLexicon(),
		safetyRules: safety.DefaultRules(),
		rules:       rules.Builtin(),
		catalog:     catalog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	extractor, err := extract.New(o.lexicon)
	if err != nil {
		return nil, err
	}
	classifier, err := safety.New(o.safetyRules)
	if err != nil {
		return nil, err
	}
	table, err := rules.NewTable(o.rules)
	if err != nil {
		return nil, fmt.Errorf("invalid rule table: %w", err)
	}
	if o.phrases == nil {
		if o.phrases, err = prompts.Default(); err != nil {
			return nil, fmt.Errorf("invalid phrasebook: %w", err)
		}
	}

	return &Engine{
		extractor:  extractor,
		classifier: classifier,
		table:      table,
		phrases:    o.phrases,
		assembler:  assembler.New(o.phrases, o.catalog),
	}, nil
}

// Assess runs one turn. It is deterministic: identical input yields an
// identical Result.
func (e *Engine) Assess(in models.RawInput) Result {
	lang := in.Language
	if !lang.Valid() {
		lang = models.DefaultLanguage
	}

	facts := e.withKnown(e.extractor.Extract(in.Text), in)
	verdict := e.classifier.Classify(in.Text, facts)

	var rule *rules.Rule
	ruleID := ""
	if !verdict.Urgent() {
		rule = e.table.Match(facts)
		ruleID = rule.ID
	}

	resp := e.assembler.Assemble(assembler.Input{
		Language: lang,
		Facts:    facts,
		Verdict:  verdict,
		Rule:     rule,
	})
	return Result{Facts: facts, Verdict: verdict, RuleID: ruleID, Response: resp}
}

// withKnown fills facts the text left unknown from the caller's profile.
// Values stated in the text take precedence.
func (e *Engine) withKnown(f models.ExtractedFacts, in models.RawInput) models.ExtractedFacts {
	if f.Age == nil && in.KnownAge != nil && *in.KnownAge >= extract.MinAge && *in.KnownAge <= extract.MaxAge {
		age := *in.KnownAge
		f.Age = &age
	}
	if !f.Gender.Known() && in.KnownGender.Known() {
		f.Gender = in.KnownGender
	}
	if len(in.MedicalHistory) > 0 {
		history := append(f.History, e.extractor.MatchHistory(in.MedicalHistory)...)
		f.History = models.SortedSet(history)
	}
	return f
}

// Table exposes the validated rule table.
func (e *Engine) Table() *rules.Table { return e.table }

// Phrases exposes the validated phrasebook.
func (e *Engine) Phrases() *prompts.Phrasebook { return e.phrases }
