// Package analytics derives spending statistics and rule-based insights
// from a snapshot of the subscription store.
package analytics

import (
	"strconv"

	"subsage/internal/model"
)

// Round2 rounds the exact binary value of v to two decimal places, ties to
// even, so it always agrees with the %.2f figures in insight messages.
func Round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

func TotalCost(subs []model.Subscription) float64 {
	var total float64
	for _, sub := range subs {
		total += sub.Cost
	}
	return total
}

// Compute is evaluated on every call so the result always reflects the
// snapshot it was given.
func Compute(subs []model.Subscription) model.Analytics {
	total := TotalCost(subs)

	spending := make(map[string]float64)
	for _, sub := range subs {
		spending[sub.Category] += sub.Cost
	}

	var mostExpensive *model.Subscription
	for i := range subs {
		// strict comparison keeps the first occurrence on ties
		if mostExpensive == nil || subs[i].Cost > mostExpensive.Cost {
			mostExpensive = &subs[i]
		}
	}
	if mostExpensive != nil {
		top := *mostExpensive
		mostExpensive = &top
	}

	var average float64
	if len(subs) > 0 {
		average = Round2(total / float64(len(subs)))
	}

	return model.Analytics{
		TotalMonthlyCost:  Round2(total),
		SubscriptionCount: len(subs),
		CategorySpending:  spending,
		MostExpensive:     mostExpensive,
		AverageCost:       average,
	}
}
