package pipeline

import (
	"testing"

	"scriptpilot/internal/domain/scripts"

	"github.com/stretchr/testify/assert"
)

func eligibleScript(stage scripts.Stage) *scripts.Script {
	return &scripts.Script{
		Stage:               stage,
		HookType:            "story",
		TargetLengthMinutes: 2,
		ChecklistIntro:      true,
		ChecklistBody:       true,
		ChecklistCTA:        true,
		ScriptContent:       "All set.",
	}
}

func TestDecideSameStageIsNoOp(t *testing.T) {
	d := Decide(eligibleScript(scripts.StageDraft), scripts.StageDraft)
	assert.Equal(t, NoOp, d.Outcome)
	assert.Empty(t, d.Issues)
}

func TestDecideFreeMovementBetweenUngatedStages(t *testing.T) {
	// Any move not entering ready proceeds, forwards or backwards, even for
	// a script that would fail the readiness gate.
	s := &scripts.Script{Stage: scripts.StagePublished}
	for _, target := range []scripts.Stage{scripts.StageIdea, scripts.StageDraft, scripts.StageEditing} {
		d := Decide(s, target)
		assert.Equal(t, Proceed, d.Outcome, "move to %s", target)
		assert.Empty(t, d.Issues)
	}
}

func TestDecideReadyEntryBlockedWithIssues(t *testing.T) {
	d := Decide(&scripts.Script{Stage: scripts.StageEditing}, scripts.StageReady)
	assert.Equal(t, Blocked, d.Outcome)
	assert.Equal(t, []string{
		"Hook type must be classified",
		"Target length must be declared",
		"All checklist items must be completed (Intro, Body, CTA)",
	}, d.Issues)
}

func TestDecideReadyEntryAllowedWhenEligible(t *testing.T) {
	d := Decide(eligibleScript(scripts.StageEditing), scripts.StageReady)
	assert.Equal(t, Proceed, d.Outcome)
	assert.Empty(t, d.Issues)
}

func TestDecideLeavingReadyIsNotGated(t *testing.T) {
	// The gate applies on entry only; a ready script with stale content can
	// always move back.
	d := Decide(&scripts.Script{Stage: scripts.StageReady}, scripts.StageDraft)
	assert.Equal(t, Proceed, d.Outcome)
}
