package model

// Analytics is a snapshot of spending statistics over the current store.
type Analytics struct {
	TotalMonthlyCost  float64            `json:"totalMonthlyCost"`
	SubscriptionCount int                `json:"subscriptionCount"`
	CategorySpending  map[string]float64 `json:"categorySpending"`
	MostExpensive     *Subscription      `json:"mostExpensive"`
	AverageCost       float64            `json:"averageCost"`
}

type InsightType string

const (
	InsightInfo    InsightType = "info"
	InsightWarning InsightType = "warning"
	InsightSuccess InsightType = "success"
	InsightTip     InsightType = "tip"
	InsightAlert   InsightType = "alert"
	InsightCost    InsightType = "cost"
)

type Insight struct {
	Type    InsightType `json:"type"`
	Message string      `json:"message"`
}

type InsightSummary struct {
	TotalCost         float64 `json:"totalCost"`
	SubscriptionCount int     `json:"subscriptionCount"`
	PotentialSavings  float64 `json:"potentialSavings"`
}

// InsightReport is the full output of one insight generation pass.
type InsightReport struct {
	Insights []Insight      `json:"insights"`
	Summary  InsightSummary `json:"summary"`
}
