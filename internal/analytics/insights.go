package analytics

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"subsage/internal/model"
)

const (
	highSpendThreshold    = 100.0
	manySubscriptions     = 5
	crowdedCategory       = 2
	expensiveSubscription = 30.0
	savingsRate           = 0.15
	selectedTipCount      = 2
	emptyStoreInsight     = "No subscriptions added yet. Start tracking to get personalized insights!"
)

// TipPool holds the generic money-saving tips sampled into every report.
var TipPool = []string{
	"Look for annual plans - they often save 15-20% compared to monthly billing.",
	"Review subscriptions quarterly to cancel unused services.",
	"Check if your employer offers discounts on popular services.",
}

// RandomSource picks tips. *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Perm(n int) []int
}

// NewRandomSource returns a deterministic source for a seed, or an
// entropy-seeded one when seed is nil.
func NewRandomSource(seed *uint64) RandomSource {
	if seed == nil {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}

// InsightGenerator is safe for concurrent use.
type InsightGenerator struct {
	mu   sync.Mutex
	rng  RandomSource
	tips []string
}

func NewInsightGenerator(rng RandomSource) *InsightGenerator {
	return &InsightGenerator{rng: rng, tips: TipPool}
}

// Generate applies the insight rules in order: spending level, subscription
// count, crowded categories, expensive subscriptions, then sampled tips.
func (g *InsightGenerator) Generate(subs []model.Subscription) model.InsightReport {
	total := TotalCost(subs)
	report := model.InsightReport{
		Summary: model.InsightSummary{
			TotalCost:         Round2(total),
			SubscriptionCount: len(subs),
			PotentialSavings:  Round2(total * savingsRate),
		},
	}

	if len(subs) == 0 {
		report.Insights = []model.Insight{{Type: model.InsightInfo, Message: emptyStoreInsight}}
		return report
	}

	var insights []model.Insight

	if total > highSpendThreshold {
		insights = append(insights, model.Insight{
			Type:    model.InsightWarning,
			Message: fmt.Sprintf("Your monthly subscription spending is $%.2f. That's $%.2f annually!", total, total*12),
		})
	} else {
		insights = append(insights, model.Insight{
			Type:    model.InsightSuccess,
			Message: fmt.Sprintf("Your monthly subscription spending is $%.2f. You're managing your budget well!", total),
		})
	}

	if len(subs) > manySubscriptions {
		insights = append(insights, model.Insight{
			Type:    model.InsightAlert,
			Message: fmt.Sprintf("You have %d active subscriptions. Consider consolidating to save money.", len(subs)),
		})
	}

	var order []string
	counts := make(map[string]int)
	for _, sub := range subs {
		if _, ok := counts[sub.Category]; !ok {
			order = append(order, sub.Category)
		}
		counts[sub.Category]++
	}
	for _, category := range order {
		if counts[category] > crowdedCategory {
			insights = append(insights, model.Insight{
				Type:    model.InsightTip,
				Message: fmt.Sprintf("You have %d %s subscriptions. You might be able to consolidate these.", counts[category], category),
			})
		}
	}

	for _, sub := range subs {
		if sub.Cost > expensiveSubscription {
			insights = append(insights, model.Insight{
				Type:    model.InsightCost,
				Message: fmt.Sprintf("%s costs $%s/month. Is it worth the value?", sub.Name, FormatCost(sub.Cost)),
			})
		}
	}

	for _, tip := range g.pickTips() {
		insights = append(insights, model.Insight{Type: model.InsightTip, Message: tip})
	}

	report.Insights = insights
	return report
}

func (g *InsightGenerator) pickTips() []string {
	n := min(selectedTipCount, len(g.tips))
	g.mu.Lock()
	perm := g.rng.Perm(len(g.tips))
	g.mu.Unlock()

	picked := make([]string, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, g.tips[idx])
	}
	return picked
}

// FormatCost prints the shortest decimal form of v, keeping a ".0" on whole
// amounts so 35 reads as 35.0.
func FormatCost(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
