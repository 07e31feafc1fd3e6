package period

import (
	"testing"
	"time"

	"github.com/openmonetis/backend/internal/domain/entity"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(v int) *int { return &v }

func TestDerive_CreditCard(t *testing.T) {
	tests := []struct {
		name       string
		purchase   string
		closingDay *int
		dueDay     *int
		expected   string
	}{
		// Card closes day 22, due day 1: due day precedes closing day, so
		// every purchase gains one extra month on top of the cycle rule.
		{
			name:       "after closing with early due day advances two months",
			purchase:   "2026-02-25",
			closingDay: intPtr(22),
			dueDay:     intPtr(1),
			expected:   "2026-04",
		},
		{
			name:       "before closing with early due day advances one month",
			purchase:   "2026-02-15",
			closingDay: intPtr(22),
			dueDay:     intPtr(1),
			expected:   "2026-03",
		},
		// Card closes day 5, due day 15: due day after closing day, only
		// the cycle rule applies.
		{
			name:       "after closing with late due day advances one month",
			purchase:   "2026-02-10",
			closingDay: intPtr(5),
			dueDay:     intPtr(15),
			expected:   "2026-03",
		},
		{
			name:       "before closing with late due day stays in base month",
			purchase:   "2026-02-03",
			closingDay: intPtr(5),
			dueDay:     intPtr(15),
			expected:   "2026-02",
		},
		{
			name:       "purchase on the closing day itself stays in cycle",
			purchase:   "2026-02-22",
			closingDay: intPtr(22),
			dueDay:     intPtr(28),
			expected:   "2026-02",
		},
		{
			name:       "december purchase carries into next year",
			purchase:   "2026-12-28",
			closingDay: intPtr(22),
			dueDay:     intPtr(1),
			expected:   "2027-02",
		},
		{
			name:     "missing closing day falls back to purchase month",
			purchase: "2026-02-25",
			dueDay:   intPtr(1),
			expected: "2026-02",
		},
		{
			name:       "out-of-range closing day falls back to purchase month",
			purchase:   "2026-02-25",
			closingDay: intPtr(0),
			dueDay:     intPtr(1),
			expected:   "2026-02",
		},
		{
			name:       "day comparison uses raw day numbers in short months",
			purchase:   "2026-02-28",
			closingDay: intPtr(28),
			dueDay:     intPtr(28),
			expected:   "2026-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(DeriveInput{
				PurchaseDate:  date(tt.purchase),
				PaymentMethod: entity.PaymentMethodCreditCard,
				ClosingDay:    tt.closingDay,
				DueDay:        tt.dueDay,
			})
			if got != tt.expected {
				t.Errorf("Derive(%s) = %s, want %s", tt.purchase, got, tt.expected)
			}
		})
	}
}

func TestDerive_Boleto(t *testing.T) {
	t.Run("uses due date month when present", func(t *testing.T) {
		due := date("2026-03-10")
		got := Derive(DeriveInput{
			PurchaseDate:  date("2026-02-20"),
			PaymentMethod: entity.PaymentMethodBoleto,
			BoletoDueDate: &due,
		})
		if got != "2026-03" {
			t.Errorf("expected 2026-03, got %s", got)
		}
	})

	t.Run("falls back to purchase date without due date", func(t *testing.T) {
		got := Derive(DeriveInput{
			PurchaseDate:  date("2026-02-20"),
			PaymentMethod: entity.PaymentMethodBoleto,
		})
		if got != "2026-02" {
			t.Errorf("expected 2026-02, got %s", got)
		}
	})
}

func TestDerive_OtherMethods(t *testing.T) {
	methods := []entity.PaymentMethod{
		entity.PaymentMethodDebitCard,
		entity.PaymentMethodCash,
		entity.PaymentMethodPix,
		entity.PaymentMethodBankTransfer,
		entity.PaymentMethodPrepaidVoucher,
		entity.PaymentMethodOther,
	}

	for _, method := range methods {
		t.Run(string(method), func(t *testing.T) {
			got := Derive(DeriveInput{
				PurchaseDate:  date("2026-07-31"),
				PaymentMethod: method,
				// Card fields must be ignored for non-card methods.
				ClosingDay: intPtr(22),
				DueDay:     intPtr(1),
			})
			if got != "2026-07" {
				t.Errorf("expected 2026-07, got %s", got)
			}
		})
	}
}

func TestDerive_Idempotence(t *testing.T) {
	in := DeriveInput{
		PurchaseDate:  date("2026-02-25"),
		PaymentMethod: entity.PaymentMethodCreditCard,
		ClosingDay:    intPtr(22),
		DueDay:        intPtr(1),
	}

	first := Derive(in)
	for i := 0; i < 10; i++ {
		if got := Derive(in); got != first {
			t.Fatalf("Derive is not idempotent: got %s then %s", first, got)
		}
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"2026-01", "2026-02"},
		{"2026-11", "2026-12"},
		{"2026-12", "2027-01"},
		{"1999-12", "2000-01"},
	}

	for _, tt := range tests {
		if got := Next(tt.in); got != tt.expected {
			t.Errorf("Next(%s) = %s, want %s", tt.in, got, tt.expected)
		}
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"2026-01", "2026-12", "0001-01"}
	invalid := []string{"", "2026-13", "2026-00", "2026-1", "26-01", "2026/01", "2026-01-01"}

	for _, p := range valid {
		if !IsValid(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}
	for _, p := range invalid {
		if IsValid(p) {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		months   int
		expected string
	}{
		{"preserves day when target month permits", "2026-01-15", 1, "2026-02-15"},
		{"clamps to end of february", "2026-01-31", 1, "2026-02-28"},
		{"clamps to leap february", "2028-01-31", 1, "2028-02-29"},
		{"clamp does not stick for later months", "2026-01-31", 2, "2026-03-31"},
		{"crosses year boundary", "2026-11-30", 3, "2027-02-28"},
		{"zero months is identity", "2026-05-10", 0, "2026-05-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(date(tt.in), tt.months)
			if got.Format("2006-01-02") != tt.expected {
				t.Errorf("AddMonths(%s, %d) = %s, want %s",
					tt.in, tt.months, got.Format("2006-01-02"), tt.expected)
			}
		})
	}
}
