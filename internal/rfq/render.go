package rfq

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Company selects whose account header the generated message carries. It
// applies to the whole message, not to individual trades.
type Company string

const (
	CompanyBrasil  Company = "Alcast Brasil"
	CompanyTrading Company = "Alcast Trading"
)

// Valid reports whether c is a recognized company.
func (c Company) Valid() bool {
	return c == CompanyBrasil || c == CompanyTrading
}

// RenderTrade turns one trade into its message block, or an empty string for
// a trade with a non-positive quantity. Incomplete legs are omitted rather
// than reported: a fixing leg without a fixing date or an interval leg
// missing either date contributes no leg line, and a fixing leg with neither
// order text nor validity contributes no instruction line.
func RenderTrade(t Trade) string {
	if t.Quantity <= 0 {
		return ""
	}

	lines := []string{
		fmt.Sprintf("%s %smt", t.TradeType, formatNumber(t.Quantity)),
	}

	legs := [2]Leg{t.Leg1, t.Leg2}
	for i, leg := range legs {
		if line := legLine(leg, i+1); line != "" {
			lines = append(lines, line)
		}
	}
	for i, leg := range legs {
		if inst := executionInstruction(leg); inst != "" {
			lines = append(lines, fmt.Sprintf("Execution Instruction Leg %d: %s", i+1, inst))
		}
	}

	return strings.Join(lines, "\n")
}

// Assemble builds the final outgoing message: the account header followed by
// every non-empty trade block, blocks separated by a blank line. Trades that
// render empty leave no artifacts in the output.
func Assemble(company Company, trades []Trade) string {
	header := fmt.Sprintf("For %s Account:\n\n", company)

	blocks := make([]string, 0, len(trades))
	for _, t := range trades {
		if text := RenderTrade(t); text != "" {
			blocks = append(blocks, text)
		}
	}

	return header + strings.Join(blocks, "\n\n")
}

// legLine renders "Leg {n}: {Side} {descriptor}" for a leg with pricing
// selected, or "" when the leg has no price type or its tenor is incomplete.
func legLine(leg Leg, n int) string {
	desc := descriptor(leg)
	if desc == "" {
		return ""
	}
	return fmt.Sprintf("Leg %d: %s %s", n, leg.Side.Title(), desc)
}

func descriptor(leg Leg) string {
	switch leg.PriceType {
	case PriceAVG:
		return fmt.Sprintf("%s %s AVG", leg.Month, leg.Year)
	case PriceAVGInterval:
		if leg.StartDate == "" || leg.EndDate == "" {
			return ""
		}
		return fmt.Sprintf("AVG from %s to %s", FormatDate(leg.StartDate), FormatDate(leg.EndDate))
	case PriceFix:
		if leg.FixingDate == "" {
			return ""
		}
		return "Fix " + FormatDate(leg.FixingDate)
	case PriceC2R:
		if leg.FixingDate != "" {
			return "C2R (Cash) Fix " + FormatDate(leg.FixingDate)
		}
		return "C2R (Cash)"
	}
	return ""
}

// executionInstruction renders the instruction text for fixing legs. The
// validity token is appended even when no order text was produced, so an
// order type of none with a validity of Day yields just "Day". Counterparties
// parse that form today; keep it.
func executionInstruction(leg Leg) string {
	if !leg.PriceType.fixable() {
		return ""
	}

	var parts []string

	switch {
	case leg.OrderType == OrderAtMarket:
		parts = append(parts, string(OrderAtMarket))
	case leg.OrderType == OrderLimit && leg.LimitPrice > 0:
		parts = append(parts, "Limit "+formatNumber(leg.LimitPrice))
	case leg.OrderType == OrderResting:
		parts = append(parts, string(OrderResting))
	}

	if leg.OrderValidity != ValidityNone {
		parts = append(parts, string(leg.OrderValidity))
	}

	return strings.Join(parts, ", ")
}

// FormatDate renders an ISO date (YYYY-MM-DD) as two-digit day, three-letter
// English month and four-digit year, e.g. "05 Mar 2025". Absent or
// unparseable dates format to the empty string.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return ""
	}
	return d.Format("02 Jan 2006")
}

// formatNumber renders a quantity or price in its shortest exact decimal
// form: 500 -> "500", 2450.5 -> "2450.5".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
