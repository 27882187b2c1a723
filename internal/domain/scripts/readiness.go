package scripts

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Inline filming markers look like "[ACTION: point at chart]". Case-sensitive,
// non-greedy up to the next closing bracket.
var actionCueRe = regexp.MustCompile(`\[ACTION:.*?\]`)

var paragraphSplitRe = regexp.MustCompile(`\n{2,}`)

const (
	defaultWordsPerMinute = 150
	maxSegmentWords       = 300
)

// ValidateReadiness evaluates the stage-gate rules for entering the ready
// stage. It returns the full list of human-readable blocking issues in a
// fixed presentation order; an empty list means the script is eligible.
// Pure and total: missing fields count as failing values, nothing is thrown.
func ValidateReadiness(s *Script) []string {
	issues := []string{}

	if s.HookType == "" {
		issues = append(issues, "Hook type must be classified")
	}
	if s.TargetLengthMinutes <= 0 {
		issues = append(issues, "Target length must be declared")
	}
	if !s.ChecklistIntro || !s.ChecklistBody || !s.ChecklistCTA {
		issues = append(issues, "All checklist items must be completed (Intro, Body, CTA)")
	}

	content := s.ScriptContent
	words := len(strings.Fields(content))
	wpm := s.WordsPerMinute
	if wpm == 0 {
		wpm = defaultWordsPerMinute
	}
	minutes := float64(words) / wpm

	actionCues := len(actionCueRe.FindAllString(content, -1))
	requiredCues := int(math.Floor(minutes / 2))
	if minutes > 2 && actionCues < requiredCues {
		issues = append(issues, fmt.Sprintf("Need at least %d action cues for ~%d minute script", requiredCues, int(math.Round(minutes))))
	}

	for _, p := range paragraphSplitRe.Split(content, -1) {
		stripped := actionCueRe.ReplaceAllString(p, "")
		if len(strings.Fields(stripped)) > maxSegmentWords {
			// Reported once no matter how many segments qualify.
			issues = append(issues, "Script contains segments over 300 words without breaks")
			break
		}
	}

	return issues
}
