// Package pipeline decides whether a script may move between stages. Stages
// form a labeled set with free movement in both directions; only entry into
// ready is gated, by the readiness validator.
package pipeline

import "scriptpilot/internal/domain/scripts"

type Outcome int

const (
	// Proceed: persist the new stage and refresh last_edited.
	Proceed Outcome = iota
	// NoOp: target equals the current stage, skip the write.
	NoOp
	// Blocked: readiness issues stand in the way; nothing is written.
	Blocked
)

type Decision struct {
	Outcome Outcome
	Issues  []string
}

// Decide evaluates a requested transition against a script snapshot. Pure:
// persistence is the caller's job, so this can be exercised without a store.
func Decide(s *scripts.Script, target scripts.Stage) Decision {
	if target == s.Stage {
		return Decision{Outcome: NoOp}
	}
	if target == scripts.StageReady {
		if issues := scripts.ValidateReadiness(s); len(issues) > 0 {
			return Decision{Outcome: Blocked, Issues: issues}
		}
	}
	return Decision{Outcome: Proceed}
}
