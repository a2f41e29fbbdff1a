package report

import (
	"bytes"
	"strings"
	"testing"

	"subsage/internal/model"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	text.DisableColors()
	m.Run()
}

func TestPrintSubscriptions(t *testing.T) {
	var buf bytes.Buffer
	PrintSubscriptions(&buf, []model.Subscription{
		{ID: 1, Name: "Netflix", Cost: 15.49, RenewalDate: "2025-12-01", Category: "Streaming"},
		{ID: 3, Name: "Spotify", Cost: 10, RenewalDate: "2025-12-05", Category: "Music"},
	})

	out := buf.String()
	assert.Contains(t, out, "Netflix")
	assert.Contains(t, out, "$185.88")
	assert.Contains(t, out, "$25.49")
	assert.Contains(t, out, "$305.88")
	assert.Less(t, strings.Index(out, "Netflix"), strings.Index(out, "Spotify"))
}

func TestPrintSubscriptionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintSubscriptions(&buf, nil)
	assert.Equal(t, "No subscriptions yet.\n", buf.String())
}

func TestPrintAnalyticsOrdersCategoriesBySpend(t *testing.T) {
	var buf bytes.Buffer
	PrintAnalytics(&buf, model.Analytics{
		TotalMonthlyCost:  60,
		SubscriptionCount: 3,
		CategorySpending:  map[string]float64{"Music": 10, "Gaming": 40, "Other": 10},
		MostExpensive:     &model.Subscription{Name: "Xbox", Cost: 40},
		AverageCost:       20,
	})

	out := buf.String()
	assert.Contains(t, out, "Xbox ($40.00)")
	assert.Contains(t, out, "$720.00")
	assert.Less(t, strings.Index(out, "Gaming"), strings.Index(out, "Music"))
	assert.Less(t, strings.Index(out, "Music"), strings.Index(out, "Other"))
}

func TestPrintAnalyticsEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintAnalytics(&buf, model.Analytics{CategorySpending: map[string]float64{}})

	out := buf.String()
	assert.NotContains(t, out, "Most expensive")
	assert.NotContains(t, out, "Category Breakdown")
}

func TestPrintInsightsAndCoupons(t *testing.T) {
	var buf bytes.Buffer
	PrintInsights(&buf, model.InsightReport{
		Insights: []model.Insight{{Type: model.InsightTip, Message: "Review subscriptions quarterly to cancel unused services."}},
		Summary:  model.InsightSummary{PotentialSavings: 22.5},
	})
	PrintCoupons(&buf, []model.Coupon{{ID: 1, Service: "Netflix Premium", Code: "STREAM2025"}})

	out := buf.String()
	assert.Contains(t, out, "quarterly")
	assert.Contains(t, out, "$22.50 / month")
	assert.Contains(t, out, "STREAM2025")
}
