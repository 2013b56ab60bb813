package content

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Billing is the pricing page's monthly/yearly toggle.
type Billing int

const (
	Monthly Billing = iota
	Yearly
)

// ParseBilling maps a query value to a Billing. Anything other than
// "yearly" is the initial monthly state.
func ParseBilling(v string) Billing {
	if v == "yearly" {
		return Yearly
	}
	return Monthly
}

// Toggle flips the billing period in place.
func (b *Billing) Toggle() {
	if *b == Yearly {
		*b = Monthly
		return
	}
	*b = Yearly
}

func (b Billing) String() string {
	if b == Yearly {
		return "yearly"
	}
	return "monthly"
}

// DisplayPrice is the per-month figure shown on the plan card. Yearly
// billing shows the yearly total spread over twelve months, rounded down.
func (p Plan) DisplayPrice(b Billing) int {
	if b == Yearly {
		return p.YearlyPrice / 12
	}
	return p.MonthlyPrice
}

var printer = message.NewPrinter(language.English)

// FormatDollars renders n with thousands separators and a dollar sign,
// e.g. 2990 -> "$2,990".
func FormatDollars(n int) string {
	return printer.Sprintf("$%d", n)
}

// DiscountLabel is the badge shown next to the toggle while yearly is
// selected.
func (p Pricing) DiscountLabel() string {
	return fmt.Sprintf("Save %d%%", p.YearlyDiscount)
}
