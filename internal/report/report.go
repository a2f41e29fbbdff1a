// Package report renders API data as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"

	"subsage/internal/model"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// PrintSubscriptions lists subscriptions in store order with a monthly and
// yearly total footer.
func PrintSubscriptions(w io.Writer, subs []model.Subscription) {
	if len(subs) == 0 {
		fmt.Fprintln(w, "No subscriptions yet.")
		return
	}

	t := newTable(w, "Subscriptions")
	t.AppendHeader(table.Row{"ID", "Name", "Category", "Renewal", "Monthly", "Yearly"})

	var total float64
	for _, sub := range subs {
		total += sub.Cost
		t.AppendRow(table.Row{sub.ID, sub.Name, sub.Category, sub.RenewalDate, money(sub.Cost), money(sub.Cost * 12)})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"", "", "", text.Bold.Sprint("Total"), text.Bold.Sprint(money(total)), text.Bold.Sprint(money(total * 12))})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()
}

// PrintAnalytics shows the headline figures followed by spending per
// category, largest first.
func PrintAnalytics(w io.Writer, a model.Analytics) {
	t := newTable(w, "Spending Overview")
	t.AppendRow(table.Row{"Monthly total", money(a.TotalMonthlyCost)})
	t.AppendRow(table.Row{"Yearly total", money(a.TotalMonthlyCost * 12)})
	t.AppendRow(table.Row{"Subscriptions", a.SubscriptionCount})
	t.AppendRow(table.Row{"Average", money(a.AverageCost)})
	if a.MostExpensive != nil {
		t.AppendRow(table.Row{"Most expensive", fmt.Sprintf("%s (%s)", a.MostExpensive.Name, money(a.MostExpensive.Cost))})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()

	if len(a.CategorySpending) == 0 {
		return
	}

	categories := make([]string, 0, len(a.CategorySpending))
	for c := range a.CategorySpending {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		ci, cj := a.CategorySpending[categories[i]], a.CategorySpending[categories[j]]
		if ci != cj {
			return ci > cj
		}
		return categories[i] < categories[j]
	})

	ct := newTable(w, "Category Breakdown")
	ct.AppendHeader(table.Row{"Category", "Monthly"})
	for _, c := range categories {
		ct.AppendRow(table.Row{c, money(a.CategorySpending[c])})
	}
	ct.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	ct.Render()
}

var insightColors = map[model.InsightType]text.Colors{
	model.InsightWarning: {text.FgRed},
	model.InsightAlert:   {text.FgRed},
	model.InsightCost:    {text.FgYellow},
	model.InsightSuccess: {text.FgGreen},
	model.InsightTip:     {text.FgCyan},
	model.InsightInfo:    {text.FgHiBlack},
}

func PrintInsights(w io.Writer, report model.InsightReport) {
	t := newTable(w, "Insights")
	t.AppendHeader(table.Row{"Type", "Message"})
	for _, in := range report.Insights {
		label := string(in.Type)
		if colors, ok := insightColors[in.Type]; ok {
			label = colors.Sprint(label)
		}
		t.AppendRow(table.Row{label, in.Message})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{"Potential savings", money(report.Summary.PotentialSavings) + " / month"})
	t.Render()
}

func PrintCoupons(w io.Writer, coupons []model.Coupon) {
	t := newTable(w, "Available Deals")
	t.AppendHeader(table.Row{"ID", "Service", "Discount", "Code", "Expires", "Category"})
	for _, c := range coupons {
		t.AppendRow(table.Row{c.ID, c.Service, c.Discount, c.Code, c.ExpiryDate, c.Category})
	}
	t.Render()
}
