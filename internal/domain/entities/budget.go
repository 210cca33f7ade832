package entities

import (
	"math"
	"time"
)

// BudgetStatus represents the lifecycle of a budget (orçamento/proposta).
//
// Domain notes:
//   - "vencido" is normally a derived display state: it is computed from the
//     validity date and is only stored when a user sets it explicitly.
//   - "aprovado" and "rejeitado" are terminal; a lapsed validity date never
//     overrides them.

type BudgetStatus string

const (
	BudgetStatusRascunho  BudgetStatus = "rascunho"
	BudgetStatusEnviado   BudgetStatus = "enviado"
	BudgetStatusAprovado  BudgetStatus = "aprovado"
	BudgetStatusRejeitado BudgetStatus = "rejeitado"
	BudgetStatusVencido   BudgetStatus = "vencido"
)

const (
	// DefaultCurrency is applied when a budget is created without one.
	DefaultCurrency = "BRL"

	// NearExpiryWindowDays bounds the "vence em breve" warning window.
	NearExpiryWindowDays = 7

	// ValidityDateLayout is the calendar-date format used by validity_date.
	ValidityDateLayout = "2006-01-02"
)

// BudgetItem is one line of a budget. UnitPrice is the only monetary field in
// the system kept in major currency units (it is entered as a decimal); the
// conversion to minor units happens once, when the budget total is computed.
type BudgetItem struct {
	ID          string  `json:"id"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Warranty    string  `json:"warranty"`
}

// Budget is the commercial-offer record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - ProposalID comes from an atomic counter item in the counters table.
//
// Monetary representation:
//   - TotalValue is in minor currency units (cents).

type Budget struct {
	ID           string       `json:"id"`
	ProposalID   int          `json:"proposal_id"`
	ClientID     string       `json:"client_id"`
	ClientName   string       `json:"client_name"`
	Title        string       `json:"title"`
	Status       BudgetStatus `json:"status"`
	TotalValue   int64        `json:"total_value"`
	Currency     string       `json:"currency"`
	ValidityDate string       `json:"validity_date"`
	PaymentTerms string       `json:"payment_terms"`
	Notes        string       `json:"notes"`
	Items        []BudgetItem `json:"items"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ComputeTotalCents sums quantity × unit price across all items and converts
// the result to minor units. The conversion happens exactly once, on the
// accumulated total, so per-item rounding drift cannot occur.
func ComputeTotalCents(items []BudgetItem) int64 {
	total := 0.0
	for _, it := range items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return int64(math.Round(total * 100))
}

// DaysToExpiry returns the whole-day distance from today to the validity date,
// negative once the date has passed. Both sides are midnight-normalized, so
// time-of-day skew cannot shift the result. ok is false when the budget has no
// parseable validity date.
func DaysToExpiry(validityDate string, today time.Time) (days int, ok bool) {
	v, err := time.Parse(ValidityDateLayout, validityDate)
	if err != nil {
		return 0, false
	}
	y, m, d := today.Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(v.Sub(t).Hours() / 24)), true
}

// DeriveDisplayStatus resolves the status shown to the user. Terminal statuses
// win over dates; otherwise a validity date strictly before today makes the
// budget "vencido" without touching the stored status.
func DeriveDisplayStatus(stored BudgetStatus, validityDate string, today time.Time) BudgetStatus {
	if stored == BudgetStatusAprovado || stored == BudgetStatusRejeitado {
		return stored
	}
	if days, ok := DaysToExpiry(validityDate, today); ok && days < 0 {
		return BudgetStatusVencido
	}
	return stored
}

// IsNearExpiry reports whether the validity date falls inside the warning
// window: today up to, but not including, NearExpiryWindowDays from now.
func IsNearExpiry(validityDate string, today time.Time) bool {
	days, ok := DaysToExpiry(validityDate, today)
	return ok && days >= 0 && days < NearExpiryWindowDays
}
