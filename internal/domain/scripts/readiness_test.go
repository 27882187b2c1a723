package scripts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// readyScript builds a script that passes every gate.
func readyScript() *Script {
	return &Script{
		HookType:            "question",
		TargetLengthMinutes: 1,
		ChecklistIntro:      true,
		ChecklistBody:       true,
		ChecklistCTA:        true,
		ScriptContent:       "Short and ready to film.",
	}
}

func words(n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = "word"
	}
	return strings.Join(out, " ")
}

// paragraphs joins count paragraphs of per words with blank lines so only
// the duration rule is in play, not the segment rule.
func paragraphs(count, per int) string {
	out := make([]string, count)
	for i := range out {
		out[i] = words(per)
	}
	return strings.Join(out, "\n\n")
}

func TestValidateReadinessCleanScriptPasses(t *testing.T) {
	assert.Empty(t, ValidateReadiness(readyScript()))
}

func TestValidateReadinessEmptyScript(t *testing.T) {
	issues := ValidateReadiness(&Script{})

	// Fixed order, no duration or segment issues for empty content.
	assert.Equal(t, []string{
		"Hook type must be classified",
		"Target length must be declared",
		"All checklist items must be completed (Intro, Body, CTA)",
	}, issues)
}

func TestValidateReadinessChecklistPartial(t *testing.T) {
	s := readyScript()
	s.ChecklistCTA = false

	issues := ValidateReadiness(s)
	assert.Equal(t, []string{"All checklist items must be completed (Intro, Body, CTA)"}, issues)
}

func TestValidateReadinessActionCueDensity(t *testing.T) {
	// 1500 words at the 150 wpm default is a ~10 minute script needing
	// floor(10/2) = 5 cues.
	s := readyScript()
	s.ScriptContent = paragraphs(10, 150)

	issues := ValidateReadiness(s)
	assert.Equal(t, []string{"Need at least 5 action cues for ~10 minute script"}, issues)
}

func TestValidateReadinessActionCuesSatisfied(t *testing.T) {
	s := readyScript()
	cues := strings.Repeat("[ACTION: cut to b-roll] ", 5)
	s.ScriptContent = cues + paragraphs(10, 150)

	assert.Empty(t, ValidateReadiness(s))
}

func TestValidateReadinessCustomPace(t *testing.T) {
	// 1500 words at 750 wpm is only two minutes, under the cue threshold.
	s := readyScript()
	s.ScriptContent = paragraphs(10, 150)
	s.WordsPerMinute = 750

	assert.Empty(t, ValidateReadiness(s))
}

func TestValidateReadinessLongSegmentReportedOnce(t *testing.T) {
	s := readyScript()
	s.ScriptContent = words(350) + "\n\n" + words(350)

	issues := ValidateReadiness(s)
	assert.Equal(t, []string{"Script contains segments over 300 words without breaks"}, issues)
}

func TestValidateReadinessSegmentBreaksReset(t *testing.T) {
	// Blank lines split segments, so 600 words in two paragraphs is fine.
	s := readyScript()
	s.ScriptContent = words(300) + "\n\n" + words(300)

	assert.Empty(t, ValidateReadiness(s))
}

func TestValidateReadinessCuesExcludedFromSegmentCount(t *testing.T) {
	s := readyScript()
	filler := make([]string, 298)
	for i := range filler {
		filler[i] = "word"
	}
	// Cue markers carry the paragraph over 300 raw tokens but are stripped
	// before the segment word count.
	s.ScriptContent = strings.Join(filler, " ") + " [ACTION: hold up prop] [ACTION: zoom in]"

	assert.Empty(t, ValidateReadiness(s))
}

func TestValidateReadinessAggregatesAllIssues(t *testing.T) {
	s := &Script{ScriptContent: words(1500)}

	issues := ValidateReadiness(s)
	assert.Equal(t, []string{
		"Hook type must be classified",
		"Target length must be declared",
		"All checklist items must be completed (Intro, Body, CTA)",
		"Need at least 5 action cues for ~10 minute script",
		"Script contains segments over 300 words without breaks",
	}, issues)
}
