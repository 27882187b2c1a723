package plans

import (
	"testing"

	"scriptpilot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestPrices(t *testing.T) {
	t.Helper()
	config.STRIPE_PRICE_CREATOR = "price_creator_test"
	config.STRIPE_PRICE_PRO = "price_pro_test"
	t.Cleanup(func() {
		config.STRIPE_PRICE_CREATOR = ""
		config.STRIPE_PRICE_PRO = ""
	})
}

func TestAllTableShape(t *testing.T) {
	all := All()
	require.Len(t, all, 3)

	assert.Equal(t, "free", all[0].ID)
	assert.Equal(t, 0, all[0].PriceMonthly)
	assert.Empty(t, all[0].StripePriceID)

	assert.Equal(t, "creator", all[1].ID)
	assert.Equal(t, 12, all[1].PriceMonthly)

	assert.Equal(t, "pro", all[2].ID)
	assert.Equal(t, 29, all[2].PriceMonthly)

	assert.True(t, all[0].Rank < all[1].Rank && all[1].Rank < all[2].Rank)
}

func TestByIDAndByName(t *testing.T) {
	p, ok := ByID("creator")
	require.True(t, ok)
	assert.Equal(t, "Creator", p.Name)

	p, ok = ByName("Pro")
	require.True(t, ok)
	assert.Equal(t, RankPro, p.Rank)

	_, ok = ByID("enterprise")
	assert.False(t, ok)
}

func TestByPriceID(t *testing.T) {
	setTestPrices(t)

	p, ok := ByPriceID("price_creator_test")
	require.True(t, ok)
	assert.Equal(t, "creator", p.ID)

	_, ok = ByPriceID("price_unknown")
	assert.False(t, ok)
}

func TestByPriceIDEmptyNeverMatchesFree(t *testing.T) {
	// With price ids unconfigured every paid plan has an empty price id;
	// an empty lookup still must not resolve to anything.
	_, ok := ByPriceID("")
	assert.False(t, ok)
}

func TestPaidPriceIDs(t *testing.T) {
	setTestPrices(t)
	assert.Equal(t, []string{"price_creator_test", "price_pro_test"}, PaidPriceIDs())
}
