package plans

import "scriptpilot/config"

// Rank ordering (single source of truth for feature gating comparisons).
const (
	RankFree    = 0
	RankCreator = 1
	RankPro     = 2
)

type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceMonthly int      `json:"price_monthly"`
	Rank         int      `json:"rank"`
	Features     []string `json:"features"`

	// Empty for the free tier. Paid price ids come from config so the same
	// table serves test and live Stripe environments.
	StripePriceID string `json:"stripe_price_id,omitempty"`
}

// All returns the fixed plan table. Checkout validation and webhook plan
// resolution both consume this; it is the only place plans are defined.
func All() []Plan {
	return []Plan{
		{
			ID:           "free",
			Name:         "Free",
			PriceMonthly: 0,
			Rank:         RankFree,
			Features:     []string{"Pipeline access", "Idea inbox", "Script workspace"},
		},
		{
			ID:            "creator",
			Name:          "Creator",
			PriceMonthly:  12,
			Rank:          RankCreator,
			Features:      []string{"All Free tier features", "Deliverability scoring", "Pattern analytics", "Script comparison", "Teleprompter", "Script review", "Manual scheduling"},
			StripePriceID: config.STRIPE_PRICE_CREATOR,
		},
		{
			ID:            "pro",
			Name:          "Pro",
			PriceMonthly:  29,
			Rank:          RankPro,
			Features:      []string{"All Creator tier features", "Draft limits", "Friction controls"},
			StripePriceID: config.STRIPE_PRICE_PRO,
		},
	}
}

func ByID(id string) (Plan, bool) {
	for _, p := range All() {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

func ByName(name string) (Plan, bool) {
	for _, p := range All() {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}

// ByPriceID resolves a Stripe price id to a plan. The free tier has no price
// id and never matches.
func ByPriceID(priceID string) (Plan, bool) {
	if priceID == "" {
		return Plan{}, false
	}
	for _, p := range All() {
		if p.StripePriceID == priceID {
			return p, true
		}
	}
	return Plan{}, false
}

// PaidPriceIDs is the checkout allow-list.
func PaidPriceIDs() []string {
	ids := []string{}
	for _, p := range All() {
		if p.StripePriceID != "" {
			ids = append(ids, p.StripePriceID)
		}
	}
	return ids
}
