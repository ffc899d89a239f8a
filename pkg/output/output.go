// Package output provides utilities for formatting and displaying
// simulation results.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mbaillet/immosim/internal/engine"
	"github.com/mbaillet/immosim/internal/view"
	"github.com/mbaillet/immosim/pkg/format"
)

// Report is a simulation result with its derived display values, ready to
// render.
type Report struct {
	Locale    format.Locale            `json:"-"`
	Cards     []view.MetricCard        `json:"cards"`
	Quality   view.Quality             `json:"quality"`
	Fiscal    *engine.FiscalComparison `json:"fiscal,omitempty"`
	Tier      view.RegimeTier          `json:"tier,omitempty"`
	Highlight bool                     `json:"highlight_savings,omitempty"`
	Cashflows []engine.YearlyCashFlow  `json:"yearly_cashflows,omitempty"`
	Breakeven view.Breakeven           `json:"breakeven"`
	Alerts    []view.AlertView         `json:"alerts,omitempty"`
	LMP       *engine.LMPStatus        `json:"lmp_status,omitempty"`
	Warnings  []string                 `json:"warnings,omitempty"`
}

// BuildReport derives the display values for one engine response.
func BuildReport(resp *engine.SimulationResponse, lmp *engine.LMPStatus, t view.Thresholds, locale format.Locale, warnings []string) Report {
	r := Report{
		Locale:    locale,
		Cashflows: resp.YearlyCashflows,
		Alerts:    view.LocalizeAlerts(resp.Alerts, locale),
		LMP:       lmp,
		Warnings:  warnings,
	}
	if resp.Metrics != nil {
		r.Cards = view.MetricCards(*resp.Metrics, t, locale)
		r.Quality = view.Classify(resp.Metrics.IRR, t)
	}
	if resp.Fiscal != nil {
		r.Fiscal = resp.Fiscal
		r.Tier = view.RecommendedTier(*resp.Fiscal)
		r.Highlight = view.HighlightSavings(*resp.Fiscal)
	}
	if len(resp.YearlyCashflows) > 0 {
		r.Breakeven = view.DetectBreakeven(resp.YearlyCashflows)
	}
	return r
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(r Report) {
	fmt.Printf("--- Simulation results ---\n")
	for _, card := range r.Cards {
		fmt.Printf("%-22s %14s  [%s]\n", card.Label, card.Value, card.Tone)
	}

	if r.Fiscal != nil {
		fmt.Printf("\nRecommended regime: %s", r.Fiscal.Recommended)
		if r.Highlight {
			fmt.Printf(" (saves %s/year)", format.Currency(r.Fiscal.AnnualSavings, r.Locale))
		}
		fmt.Printf("\n")
	}

	switch r.Breakeven.Kind {
	case view.BreakevenImmediate:
		fmt.Printf("\nBreakeven: immediate\n")
	case view.BreakevenEarned:
		fmt.Printf("\nBreakeven: year %d\n", r.Breakeven.Year)
	}

	if len(r.Cashflows) > 0 {
		fmt.Printf("\nYear | Net change    | Cumulative\n")
		fmt.Printf("____ | _____________ | __________\n")
		for _, cf := range r.Cashflows {
			fmt.Printf("%4d | %13s | %s\n",
				cf.Year,
				format.Currency(cf.NetChange, r.Locale),
				format.Currency(cf.Cumulative, r.Locale),
			)
		}
	}

	if len(r.Alerts) > 0 {
		fmt.Printf("\n")
		for _, alert := range r.Alerts {
			fmt.Printf("%s %s\n", alert.Icon, alert.Message)
		}
	}

	if r.LMP != nil && r.LMP.IsLMP {
		fmt.Printf("\nLMP status reached (%s of revenue against a threshold of %s)\n",
			format.Currency(r.LMP.AnnualRevenue, r.Locale),
			format.Currency(r.LMP.Threshold, r.Locale),
		)
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, w := range r.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}

// JSONFormat outputs the report as indented JSON on stdout.
func JSONFormat(r Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(outputFormat string) error {
	switch strings.ToLower(outputFormat) {
	case "pretty", "json":
		return nil
	default:
		return fmt.Errorf("invalid output format %q, expected pretty or json", outputFormat)
	}
}
