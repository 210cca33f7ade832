package entities

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeTotalCents(t *testing.T) {
	t.Run("empty items", func(t *testing.T) {
		if got := ComputeTotalCents(nil); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
		if got := ComputeTotalCents([]BudgetItem{}); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("single item", func(t *testing.T) {
		items := []BudgetItem{{Quantity: 2, UnitPrice: 899.00}}
		if got := ComputeTotalCents(items); got != 179800 {
			t.Fatalf("expected 179800, got %d", got)
		}
	})

	t.Run("rounds once on the accumulated total", func(t *testing.T) {
		// Ten lines of 0.001 each sum to 0.01, which must survive as one cent
		// instead of ten per-line roundings to zero.
		items := make([]BudgetItem, 10)
		for i := range items {
			items[i] = BudgetItem{Quantity: 1, UnitPrice: 0.001}
		}
		if got := ComputeTotalCents(items); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("larger quantity", func(t *testing.T) {
		items := []BudgetItem{{Quantity: 10, UnitPrice: 899.00}}
		if got := ComputeTotalCents(items); got != 899000 {
			t.Fatalf("expected 899000, got %d", got)
		}
	})

	t.Run("mixed items", func(t *testing.T) {
		items := []BudgetItem{
			{Quantity: 3, UnitPrice: 10.50},
			{Quantity: 1, UnitPrice: 0.49},
		}
		if got := ComputeTotalCents(items); got != 3199 {
			t.Fatalf("expected 3199, got %d", got)
		}
	})
}

func TestDaysToExpiry(t *testing.T) {
	today := date(2025, time.March, 10)

	t.Run("same day", func(t *testing.T) {
		days, ok := DaysToExpiry("2025-03-10", today)
		if !ok || days != 0 {
			t.Fatalf("expected (0, true), got (%d, %v)", days, ok)
		}
	})

	t.Run("one week ahead", func(t *testing.T) {
		days, ok := DaysToExpiry("2025-03-17", today)
		if !ok || days != 7 {
			t.Fatalf("expected (7, true), got (%d, %v)", days, ok)
		}
	})

	t.Run("yesterday", func(t *testing.T) {
		days, ok := DaysToExpiry("2025-03-09", today)
		if !ok || days != -1 {
			t.Fatalf("expected (-1, true), got (%d, %v)", days, ok)
		}
	})

	t.Run("time of day does not shift the result", func(t *testing.T) {
		lateToday := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)
		days, ok := DaysToExpiry("2025-03-11", lateToday)
		if !ok || days != 1 {
			t.Fatalf("expected (1, true), got (%d, %v)", days, ok)
		}
	})

	t.Run("unparseable date", func(t *testing.T) {
		if _, ok := DaysToExpiry("", today); ok {
			t.Fatal("expected ok=false for empty date")
		}
		if _, ok := DaysToExpiry("10/03/2025", today); ok {
			t.Fatal("expected ok=false for wrong layout")
		}
	})
}

func TestDeriveDisplayStatus(t *testing.T) {
	today := date(2025, time.March, 10)

	t.Run("lapsed date turns enviado into vencido", func(t *testing.T) {
		got := DeriveDisplayStatus(BudgetStatusEnviado, "2025-03-01", today)
		if got != BudgetStatusVencido {
			t.Fatalf("expected vencido, got %s", got)
		}
	})

	t.Run("validity today is not vencido", func(t *testing.T) {
		got := DeriveDisplayStatus(BudgetStatusEnviado, "2025-03-10", today)
		if got != BudgetStatusEnviado {
			t.Fatalf("expected enviado, got %s", got)
		}
	})

	t.Run("aprovado is terminal", func(t *testing.T) {
		got := DeriveDisplayStatus(BudgetStatusAprovado, "2020-01-01", today)
		if got != BudgetStatusAprovado {
			t.Fatalf("expected aprovado, got %s", got)
		}
	})

	t.Run("rejeitado is terminal", func(t *testing.T) {
		got := DeriveDisplayStatus(BudgetStatusRejeitado, "2020-01-01", today)
		if got != BudgetStatusRejeitado {
			t.Fatalf("expected rejeitado, got %s", got)
		}
	})

	t.Run("no validity date keeps the stored status", func(t *testing.T) {
		got := DeriveDisplayStatus(BudgetStatusRascunho, "", today)
		if got != BudgetStatusRascunho {
			t.Fatalf("expected rascunho, got %s", got)
		}
	})
}

func TestIsNearExpiry(t *testing.T) {
	today := date(2025, time.March, 10)

	cases := []struct {
		name     string
		validity string
		want     bool
	}{
		{"today", "2025-03-10", true},
		{"six days ahead", "2025-03-16", true},
		{"seven days ahead", "2025-03-17", false},
		{"already lapsed", "2025-03-09", false},
		{"no date", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNearExpiry(tc.validity, today); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
