package finboard

import (
	"slices"
	"strings"

	"github.com/etnz/finboard/date"
	"github.com/shopspring/decimal"
)

// DividendPayment is one dividend credited to the portfolio.
type DividendPayment struct {
	Symbol          string          `json:"symbol" validate:"required"`
	PaymentDate     date.Flex       `json:"payment_date"`
	DeclarationDate date.Flex       `json:"declaration_date"`
	Amount          decimal.Decimal `json:"dividend_amount"`
	PerShare        decimal.Decimal `json:"dividend_per_share" validate:"gte=0"`
	Shares          decimal.Decimal `json:"shares" validate:"gte=0"`
	Currency        string          `json:"currency" validate:"omitempty,iso4217"`
}

// MonthlyAggregate sums the dividend payments of one calendar month.
type MonthlyAggregate struct {
	Year      int             `json:"year"`
	Month     int             `json:"month"`     // 1-12
	MonthName string          `json:"monthName"` // e.g. "January"
	Total     decimal.Decimal `json:"total"`
	// Currency is the currency shared by all payments, "" when they differ.
	Currency string            `json:"currency,omitempty"`
	Payments []DividendPayment `json:"payments"`
}

// normalize upper-cases the currency code.
func (p *DividendPayment) normalize() {
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
}

// Money returns the total as a Money, using fallback when the payments have no common currency.
func (m MonthlyAggregate) Money(fallback string) Money {
	if m.Currency != "" {
		return M(m.Total, m.Currency)
	}
	return M(m.Total, fallback)
}

// clone returns a copy of m that shares no memory with it.
func (m MonthlyAggregate) clone() MonthlyAggregate {
	m.Payments = slices.Clone(m.Payments)
	return m
}

// add accounts for p in the month.
func (m *MonthlyAggregate) add(p DividendPayment) {
	switch {
	case len(m.Payments) == 0:
		m.Currency = p.Currency
	case m.Currency != p.Currency:
		m.Currency = ""
	}
	m.Payments = append(m.Payments, p)
	m.Total = m.Total.Add(p.Amount)
}
