package rfq

import (
	"strings"
	"testing"
)

// TestRenderTrade_FullScenario renders the canonical swap ticket end to end:
// an averaging buy leg against a fixed sell leg with an at-market execution
// instruction. This is the message shape the desk sends most days.
func TestRenderTrade_FullScenario(t *testing.T) {
	trade := Trade{
		ID:        1,
		Quantity:  500,
		TradeType: Swap,
		Leg1: Leg{
			Side:      Buy,
			PriceType: PriceAVG,
			Month:     "March",
			Year:      "2025",
		},
		Leg2: Leg{
			Side:       Sell,
			PriceType:  PriceFix,
			FixingDate: "2025-03-20",
			OrderType:  OrderAtMarket,
		},
	}

	want := strings.Join([]string{
		"Swap 500mt",
		"Leg 1: Buy March 2025 AVG",
		"Leg 2: Sell Fix 20 Mar 2025",
		"Execution Instruction Leg 2: At Market",
	}, "\n")

	if got := RenderTrade(trade); got != want {
		t.Errorf("RenderTrade mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTrade_EmptyQuantity(t *testing.T) {
	t.Run("zero quantity renders empty", func(t *testing.T) {
		trade := Trade{ID: 1, Quantity: 0, TradeType: Swap}
		if got := RenderTrade(trade); got != "" {
			t.Errorf("Expected empty render, got %q", got)
		}
	})

	t.Run("negative quantity renders empty", func(t *testing.T) {
		trade := Trade{ID: 1, Quantity: -10, TradeType: Forward}
		if got := RenderTrade(trade); got != "" {
			t.Errorf("Expected empty render, got %q", got)
		}
	})
}

func TestRenderTrade_FractionalQuantity(t *testing.T) {
	trade := Trade{ID: 1, Quantity: 12.5, TradeType: Forward}

	got := RenderTrade(trade)
	if !strings.HasPrefix(got, "Forward 12.5mt") {
		t.Errorf("Expected header 'Forward 12.5mt', got %q", got)
	}
}

func TestDescriptor(t *testing.T) {
	tests := []struct {
		name string
		leg  Leg
		want string
	}{
		{
			name: "AVG uses month and year verbatim",
			leg:  Leg{PriceType: PriceAVG, Month: "July", Year: "2026"},
			want: "July 2026 AVG",
		},
		{
			name: "AVGInter formats both dates",
			leg:  Leg{PriceType: PriceAVGInterval, StartDate: "2025-03-01", EndDate: "2025-03-15"},
			want: "AVG from 01 Mar 2025 to 15 Mar 2025",
		},
		{
			name: "AVGInter missing start suppresses the leg",
			leg:  Leg{PriceType: PriceAVGInterval, EndDate: "2025-03-15"},
			want: "",
		},
		{
			name: "AVGInter missing end suppresses the leg",
			leg:  Leg{PriceType: PriceAVGInterval, StartDate: "2025-03-01"},
			want: "",
		},
		{
			name: "Fix with date",
			leg:  Leg{PriceType: PriceFix, FixingDate: "2025-12-05"},
			want: "Fix 05 Dec 2025",
		},
		{
			name: "Fix without date suppresses the leg",
			leg:  Leg{PriceType: PriceFix},
			want: "",
		},
		{
			name: "C2R without date",
			leg:  Leg{PriceType: PriceC2R},
			want: "C2R (Cash)",
		},
		{
			name: "C2R with date appends the fix",
			leg:  Leg{PriceType: PriceC2R, FixingDate: "2025-06-10"},
			want: "C2R (Cash) Fix 10 Jun 2025",
		},
		{
			name: "no price type renders nothing",
			leg:  Leg{PriceType: PriceNone, Month: "March", Year: "2025"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := descriptor(tt.leg); got != tt.want {
				t.Errorf("descriptor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecutionInstruction(t *testing.T) {
	tests := []struct {
		name string
		leg  Leg
		want string
	}{
		{
			name: "at market",
			leg:  Leg{PriceType: PriceFix, OrderType: OrderAtMarket},
			want: "At Market",
		},
		{
			name: "limit with price",
			leg:  Leg{PriceType: PriceFix, OrderType: OrderLimit, LimitPrice: 2450.5},
			want: "Limit 2450.5",
		},
		{
			name: "limit without price produces no order text",
			leg:  Leg{PriceType: PriceFix, OrderType: OrderLimit},
			want: "",
		},
		{
			name: "resting with validity",
			leg:  Leg{PriceType: PriceC2R, OrderType: OrderResting, OrderValidity: ValidityGTC},
			want: "Resting, GTC",
		},
		{
			name: "validity appended without order text",
			leg:  Leg{PriceType: PriceFix, OrderType: OrderNone, OrderValidity: ValidityDay},
			want: "Day",
		},
		{
			name: "limit without price but with validity",
			leg:  Leg{PriceType: PriceFix, OrderType: OrderLimit, OrderValidity: Validity3Hours},
			want: "3 Hours",
		},
		{
			name: "averaging legs carry no instruction",
			leg:  Leg{PriceType: PriceAVG, OrderType: OrderAtMarket, OrderValidity: ValidityDay},
			want: "",
		},
		{
			name: "unpriced legs carry no instruction",
			leg:  Leg{PriceType: PriceNone, OrderType: OrderAtMarket},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := executionInstruction(tt.leg); got != tt.want {
				t.Errorf("executionInstruction() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssemble(t *testing.T) {
	t.Run("header only for empty trades", func(t *testing.T) {
		got := Assemble(CompanyBrasil, []Trade{{ID: 1, TradeType: Swap}})
		want := "For Alcast Brasil Account:\n\n"
		if got != want {
			t.Errorf("Assemble() = %q, want %q", got, want)
		}
	})

	t.Run("empty trades leave no artifacts between blocks", func(t *testing.T) {
		trades := []Trade{
			{ID: 1, Quantity: 100, TradeType: Swap},
			{ID: 2, TradeType: Swap}, // renders empty
			{ID: 3, Quantity: 200, TradeType: Forward},
		}

		got := Assemble(CompanyTrading, trades)
		want := "For Alcast Trading Account:\n\nSwap 100mt\n\nForward 200mt"
		if got != want {
			t.Errorf("Assemble() = %q, want %q", got, want)
		}
	})

	t.Run("blocks are joined in insertion order", func(t *testing.T) {
		trades := []Trade{
			{ID: 2, Quantity: 50, TradeType: Forward},
			{ID: 1, Quantity: 75, TradeType: Swap},
		}

		got := Assemble(CompanyBrasil, trades)
		forward := strings.Index(got, "Forward 50mt")
		swap := strings.Index(got, "Swap 75mt")
		if forward == -1 || swap == -1 || forward > swap {
			t.Errorf("Expected Forward block before Swap block, got %q", got)
		}
	})
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-03-20", "20 Mar 2025"},
		{"2025-01-05", "05 Jan 2025"},
		{"", ""},
		{"not-a-date", ""},
		{"2025-13-40", ""},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{500, "500"},
		{2450.5, "2450.5"},
		{0.25, "0.25"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
