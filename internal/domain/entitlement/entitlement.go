// Package entitlement derives the feature tier from the local subscription
// mirror. Absence of a row is the free tier; presence grants the named plan's
// feature set regardless of status.
package entitlement

import (
	"scriptpilot/internal/domain/plans"
	"scriptpilot/internal/domain/subscriptions"
)

type Kind int

const (
	Free Kind = iota
	Paid
)

func (k Kind) String() string {
	if k == Paid {
		return "paid"
	}
	return "free"
}

type Entitlement struct {
	Kind     Kind
	PlanName string
	Status   string
}

// Resolve maps a subscription row (or nil) to an explicit entitlement value.
func Resolve(sub *subscriptions.Subscription) Entitlement {
	if sub == nil {
		return Entitlement{Kind: Free}
	}
	return Entitlement{Kind: Paid, PlanName: sub.PlanName, Status: sub.Status}
}

func (e Entitlement) HasPlan(name string) bool {
	return e.Kind == Paid && e.PlanName == name
}

// Rank returns the plan-table rank, falling back to free when the mirrored
// plan name is not in the table.
func (e Entitlement) Rank() int {
	if e.Kind == Free {
		return plans.RankFree
	}
	if p, ok := plans.ByName(e.PlanName); ok {
		return p.Rank
	}
	return plans.RankFree
}

func (e Entitlement) Features() []string {
	if e.Kind == Paid {
		if p, ok := plans.ByName(e.PlanName); ok {
			return p.Features
		}
	}
	free, _ := plans.ByID("free")
	return free.Features
}
