package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nens2012/life-aid-nexus/internal/config"
	"github.com/nens2012/life-aid-nexus/internal/inference"
	"github.com/nens2012/life-aid-nexus/internal/models"
)

type assessFlags struct {
	lang    string
	age     int
	gender  string
	history []string
	asJSON  bool
}

func newRootCmd() *cobra.Command {
	var engine *inference.Engine

	root := &cobra.Command{
		Use:           "wellness-cli",
		Short:         "Assess wellness messages offline",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			e, err := inference.New()
			if err != nil {
				return fmt.Errorf("invalid inference tables: %w", err)
			}
			engine = e
			return nil
		},
	}

	root.AddCommand(
		newAssessCmd(func() *inference.Engine { return engine }),
		newRulesCmd(func() *inference.Engine { return engine }),
		newValidateCmd(),
	)
	return root
}

func newAssessCmd(engine func() *inference.Engine) *cobra.Command {
	f := &assessFlags{}
	cmd := &cobra.Command{
		Use:   "assess [text...]",
		Short: "Assess a message and print the structured response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := models.RawInput{
				Text:           strings.Join(args, " "),
				Language:       models.ParseLanguage(f.lang),
				KnownGender:    models.ParseGender(f.gender),
				MedicalHistory: f.history,
			}
			if f.age > 0 {
				age := f.age
				in.KnownAge = &age
			}

			res := engine().Assess(in)
			out := cmd.OutOrStdout()
			if f.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printResponse(cmd, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.lang, "lang", config.Load().DefaultLanguage, "response language (en, hi, gu)")
	cmd.Flags().IntVar(&f.age, "age", 0, "known age")
	cmd.Flags().StringVar(&f.gender, "gender", "", "known gender (male, female, other)")
	cmd.Flags().StringSliceVar(&f.history, "history", nil, "known medical history entries")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the full result as JSON")
	return cmd
}

func printResponse(cmd *cobra.Command, res inference.Result) {
	out := cmd.OutOrStdout()
	resp := res.Response
	fmt.Fprintf(out, "Intent:     %s\n", resp.Intent)
	fmt.Fprintf(out, "Safety:     %s\n", resp.SafetyLevel)
	if res.RuleID != "" {
		fmt.Fprintf(out, "Rule:       %s\n", res.RuleID)
	}
	fmt.Fprintf(out, "Confidence: %.2f\n", resp.Confidence)
	fmt.Fprintf(out, "\n%s\n", resp.Summary)

	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(out, "\n%s:\n", title)
		for _, item := range items {
			fmt.Fprintf(out, "  - %s\n", item)
		}
	}
	section("Conditions", resp.Conditions)
	section("Advice", resp.Advice)
	if resp.Emergency != nil {
		contacts := make([]string, 0, len(resp.Emergency.Contacts))
		for _, c := range resp.Emergency.Contacts {
			contacts = append(contacts, c.Name+": "+c.Number)
		}
		section("Emergency contacts", contacts)
	}
	for _, c := range resp.Components {
		fmt.Fprintf(out, "\n[%s] %s\n", c.Type, c.Title)
	}
	section("Next steps", resp.NextSteps)
	section("Suggestions", resp.Suggestions)
	fmt.Fprintf(out, "\n%s\n", resp.Disclaimer)
}

func newRulesCmd(engine func() *inference.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the condition rules in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, r := range engine().Table().Rules() {
				pattern := "*"
				if !r.IsFallback() {
					ids := make([]string, len(r.Pattern))
					for j, s := range r.Pattern {
						ids[j] = string(s)
					}
					pattern = strings.Join(ids, "+")
				}
				fmt.Fprintf(out, "%2d  %-20s %-8s %.2f  %s\n", i+1, r.ID, r.Level, r.Confidence, pattern)
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the lexicon, safety rules, rule table and phrasebook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// PersistentPreRunE has already built the engine, which validates
			// every table.
			fmt.Fprintln(cmd.OutOrStdout(), "OK: all tables valid")
			return nil
		},
	}
}
