package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nens2012/life-aid-nexus/internal/inference"
	"github.com/nens2012/life-aid-nexus/internal/models"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestAssess_Text(t *testing.T) {
	out := run(t, "assess", "--lang", "en", "I have fever and cough")

	assert.Contains(t, out, "Rule:       viral_infection")
	assert.Contains(t, out, "Viral Infection (Common Cold/Flu)")
	assert.Contains(t, out, "Safety:     caution")
}

func TestAssess_JSON(t *testing.T) {
	out := run(t, "assess", "--json", "--lang", "hi", "--age", "70", "सीने में दर्द")

	var res inference.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Verdict.Urgent())
	assert.Equal(t, models.LangHindi, res.Response.Language)
	require.NotNil(t, res.Facts.Age)
	assert.Equal(t, 70, *res.Facts.Age)
}

func TestRules(t *testing.T) {
	out := run(t, "rules")
	lines := strings.Split(strings.TrimSpace(out), "\n")

	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "general_wellness")
	assert.Contains(t, out, "cough+fever")
}

func TestValidate(t *testing.T) {
	assert.Contains(t, run(t, "validate"), "OK")
}

func TestAssess_RequiresText(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"assess"})
	assert.Error(t, cmd.Execute())
}
