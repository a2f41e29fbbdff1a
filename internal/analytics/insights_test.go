package analytics

import (
	"fmt"
	"strings"
	"testing"

	"subsage/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource returns the same permutation prefix on every call.
type fixedSource []int

func (f fixedSource) Perm(n int) []int {
	out := make([]int, n)
	copy(out, f[:n])
	return out
}

func messagesOfType(report model.InsightReport, typ model.InsightType) []string {
	var out []string
	for _, in := range report.Insights {
		if in.Type == typ {
			out = append(out, in.Message)
		}
	}
	return out
}

func TestGenerateEmptyStore(t *testing.T) {
	g := NewInsightGenerator(fixedSource{0, 1, 2})

	report := g.Generate(nil)

	require.Len(t, report.Insights, 1)
	assert.Equal(t, model.InsightInfo, report.Insights[0].Type)
	assert.Contains(t, report.Insights[0].Message, "No subscriptions added yet")
	assert.Zero(t, report.Summary.PotentialSavings)
	assert.Zero(t, report.Summary.SubscriptionCount)
}

func TestGenerateHighSpendWarning(t *testing.T) {
	g := NewInsightGenerator(fixedSource{2, 0, 1})

	report := g.Generate([]model.Subscription{sub(1, "Adobe", 150, "Productivity")})

	warnings := messagesOfType(report, model.InsightWarning)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "$150.00")
	assert.Contains(t, warnings[0], "$1800.00")
	assert.Equal(t, 22.5, report.Summary.PotentialSavings)
	assert.Equal(t, 150.0, report.Summary.TotalCost)

	costs := messagesOfType(report, model.InsightCost)
	require.Len(t, costs, 1)
	assert.Equal(t, "Adobe costs $150.0/month. Is it worth the value?", costs[0])
}

func TestGenerateLowSpendSuccess(t *testing.T) {
	g := NewInsightGenerator(fixedSource{0, 1, 2})

	report := g.Generate([]model.Subscription{sub(1, "Spotify", 10.99, "Music")})

	assert.Equal(t, model.InsightSuccess, report.Insights[0].Type)
	assert.Equal(t, "Your monthly subscription spending is $10.99. You're managing your budget well!", report.Insights[0].Message)
	assert.Empty(t, messagesOfType(report, model.InsightWarning))
}

func TestGenerateManySubscriptionsAlert(t *testing.T) {
	g := NewInsightGenerator(fixedSource{0, 1, 2})
	categories := []string{"Streaming", "Gaming", "Music", "Fitness", "Education", "Other"}

	var subs []model.Subscription
	for i, c := range categories {
		subs = append(subs, sub(int64(i+1), fmt.Sprintf("svc-%d", i), 10, c))
	}

	report := g.Generate(subs)

	alerts := messagesOfType(report, model.InsightAlert)
	require.Len(t, alerts, 1)
	assert.Contains(t, alerts[0], "6 active subscriptions")
}

func TestGenerateCrowdedCategoryTip(t *testing.T) {
	g := NewInsightGenerator(fixedSource{0, 1, 2})
	subs := []model.Subscription{
		sub(1, "Spotify", 10.99, "Music"),
		sub(2, "Tidal", 9.99, "Music"),
		sub(3, "Deezer", 8.99, "Music"),
	}

	report := g.Generate(subs)

	var found bool
	for _, msg := range messagesOfType(report, model.InsightTip) {
		if strings.Contains(msg, "3 Music subscriptions") {
			found = true
		}
	}
	assert.True(t, found, "expected a consolidation tip for Music")
}

func TestGenerateRuleOrder(t *testing.T) {
	g := NewInsightGenerator(fixedSource{1, 2, 0})
	subs := []model.Subscription{
		sub(1, "A", 35, "Gaming"),
		sub(2, "B", 5, "Gaming"),
		sub(3, "C", 5, "Gaming"),
		sub(4, "D", 49.99, "Other"),
		sub(5, "E", 5, "Other"),
		sub(6, "F", 5, "Other"),
	}

	report := g.Generate(subs)

	types := make([]model.InsightType, 0, len(report.Insights))
	for _, in := range report.Insights {
		types = append(types, in.Type)
	}
	assert.Equal(t, []model.InsightType{
		model.InsightWarning,
		model.InsightAlert,
		model.InsightTip,
		model.InsightTip,
		model.InsightCost,
		model.InsightCost,
		model.InsightTip,
		model.InsightTip,
	}, types)

	assert.Equal(t, "Your monthly subscription spending is $104.99. That's $1259.88 annually!", report.Insights[0].Message)
	assert.Equal(t, "You have 3 Gaming subscriptions. You might be able to consolidate these.", report.Insights[2].Message)
	assert.Equal(t, "You have 3 Other subscriptions. You might be able to consolidate these.", report.Insights[3].Message)
	assert.Equal(t, "A costs $35.0/month. Is it worth the value?", report.Insights[4].Message)
	assert.Equal(t, "D costs $49.99/month. Is it worth the value?", report.Insights[5].Message)
	assert.Equal(t, TipPool[1], report.Insights[6].Message)
	assert.Equal(t, TipPool[2], report.Insights[7].Message)
}

func TestGenerateSampledTipsAreDistinctPoolMembers(t *testing.T) {
	seed := uint64(7)
	g := NewInsightGenerator(NewRandomSource(&seed))
	subs := []model.Subscription{sub(1, "Spotify", 10.99, "Music")}

	for i := 0; i < 100; i++ {
		report := g.Generate(subs)
		tips := messagesOfType(report, model.InsightTip)
		require.Len(t, tips, 2)
		assert.NotEqual(t, tips[0], tips[1])
		assert.Subset(t, TipPool, tips)
	}
}

func TestGenerateSeededSourceIsDeterministic(t *testing.T) {
	seed := uint64(42)
	subs := []model.Subscription{sub(1, "Spotify", 10.99, "Music")}

	first := NewInsightGenerator(NewRandomSource(&seed)).Generate(subs)
	second := NewInsightGenerator(NewRandomSource(&seed)).Generate(subs)

	assert.Equal(t, first, second)
}

func TestPickTipsWithSmallPool(t *testing.T) {
	g := NewInsightGenerator(fixedSource{0})
	g.tips = []string{"only tip"}

	assert.Equal(t, []string{"only tip"}, g.pickTips())
}

func TestFormatCost(t *testing.T) {
	tests := map[float64]string{
		35:     "35.0",
		49.99:  "49.99",
		30.5:   "30.5",
		100.25: "100.25",
	}

	for in, want := range tests {
		assert.Equal(t, want, FormatCost(in))
	}
}
