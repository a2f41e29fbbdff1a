package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"subsage/internal/client"
	"subsage/internal/report"

	"github.com/GiGurra/boa/pkg/boa"
)

type Params struct {
	Server  string `descr:"Base URL of a running SubSage server" default:"http://localhost:5000"`
	Section string `descr:"Which part of the report to print" alts:"all,subscriptions,analytics,insights,coupons" strict:"true" default:"all"`
}

func main() {
	boa.NewCmdT[Params]("report").
		WithShort("Print subscriptions, analytics, insights and deals from a SubSage server").
		WithRunFunc(func(params *Params) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := run(ctx, os.Stdout, client.New(params.Server), params.Section); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(ctx context.Context, w io.Writer, c *client.Client, section string) error {
	want := func(name string) bool { return section == "all" || section == name }

	if want("subscriptions") {
		subs, err := c.Subscriptions(ctx)
		if err != nil {
			return fmt.Errorf("fetching subscriptions: %w", err)
		}
		report.PrintSubscriptions(w, subs)
	}

	if want("analytics") {
		stats, err := c.Analytics(ctx)
		if err != nil {
			return fmt.Errorf("fetching analytics: %w", err)
		}
		report.PrintAnalytics(w, stats)
	}

	if want("insights") {
		insights, err := c.Insights(ctx)
		if err != nil {
			return fmt.Errorf("fetching insights: %w", err)
		}
		report.PrintInsights(w, insights)
	}

	if want("coupons") {
		coupons, err := c.Coupons(ctx)
		if err != nil {
			return fmt.Errorf("fetching coupons: %w", err)
		}
		report.PrintCoupons(w, coupons)
	}

	return nil
}
