// Package period implements billing-period derivation and the month
// arithmetic used when expanding transaction series. Everything here is a
// pure function: same inputs, same outputs, no I/O.
package period

import (
	"fmt"
	"regexp"
	"time"

	"github.com/openmonetis/backend/internal/domain/entity"
)

// Layout is the canonical billing-period format: zero-padded "YYYY-MM".
const Layout = "2006-01"

var periodRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// IsValid reports whether s is a well-formed "YYYY-MM" period string.
func IsValid(s string) bool {
	if !periodRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(Layout, s)
	return err == nil
}

// FromDate returns the period of the calendar month containing t.
func FromDate(t time.Time) string {
	return t.Format(Layout)
}

// Next returns the period immediately after p. The carry is done on raw
// year/month numbers so it never depends on month lengths.
func Next(p string) string {
	t, err := time.Parse(Layout, p)
	if err != nil {
		return p
	}
	year, month := t.Year(), int(t.Month())
	month++
	if month > 12 {
		month = 1
		year++
	}
	return fmt.Sprintf("%04d-%02d", year, month)
}

// Start returns the first day of the period in UTC. The error mirrors
// IsValid; callers validate the period string before persisting it.
func Start(p string) (time.Time, error) {
	return time.Parse(Layout, p)
}

// DeriveInput carries everything the deriver may need. ClosingDay and DueDay
// come from the card associated with a credit-card entry; BoletoDueDate from
// a boleto entry. Unused fields are ignored per payment method.
type DeriveInput struct {
	PurchaseDate  time.Time
	PaymentMethod entity.PaymentMethod
	ClosingDay    *int
	DueDay        *int
	BoletoDueDate *time.Time
}

// Derive computes the billing period an entry is attributed to.
//
// Precedence:
//   - boleto: the due date's month (purchase date when absent);
//   - credit card: the purchase month, advanced one month when the purchase
//     day is past the closing day, then one further month when the due day
//     precedes the closing day (invoice due in the month after the cycle
//     closes). Both advances are cumulative, in that order;
//   - everything else: the purchase date's month.
//
// Day comparisons use raw day-of-month numbers, never calendar rollover.
func Derive(in DeriveInput) string {
	switch in.PaymentMethod {
	case entity.PaymentMethodBoleto:
		if in.BoletoDueDate != nil {
			return FromDate(*in.BoletoDueDate)
		}
		return FromDate(in.PurchaseDate)

	case entity.PaymentMethodCreditCard:
		p := FromDate(in.PurchaseDate)
		if in.ClosingDay == nil || *in.ClosingDay < 1 || *in.ClosingDay > 31 {
			// No usable closing day: fall back to the non-card rule.
			return p
		}
		if in.PurchaseDate.Day() > *in.ClosingDay {
			p = Next(p)
		}
		if in.DueDay != nil && *in.DueDay < *in.ClosingDay {
			p = Next(p)
		}
		return p

	default:
		return FromDate(in.PurchaseDate)
	}
}

// AddMonths advances t by the given number of calendar months, preserving
// the day of month where the target month permits and clamping to its last
// day otherwise (Jan 31 + 1 month = Feb 28/29). time.AddDate is avoided for
// the day component because it rolls over instead of clamping.
func AddMonths(t time.Time, months int) time.Time {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	target := firstOfMonth.AddDate(0, months, 0)
	day := t.Day()
	if last := daysIn(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
