package finboard

import (
	"github.com/etnz/finboard/date"
	"github.com/shopspring/decimal"
)

// PriceRecord is one trading day as delivered by the price feed.
//
// Feeds deliver records newest first.
type PriceRecord struct {
	Date  date.Flex       `json:"date"`
	Open  decimal.Decimal `json:"open_price" validate:"gte=0"`
	Close decimal.Decimal `json:"close_price" validate:"gte=0"`
	High  decimal.Decimal `json:"high_price" validate:"gte=0"`
	Low   decimal.Decimal `json:"low_price" validate:"gte=0"`
}

// PricePoint is a PriceRecord ready to be charted.
type PricePoint struct {
	Date      date.Date       `json:"date"`
	Label     string          `json:"label"`     // short label, e.g. "Mar 31"
	FullLabel string          `json:"fullLabel"` // e.g. "March 31, 2024"
	Open      decimal.Decimal `json:"open"`
	Close     decimal.Decimal `json:"close"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
}

// pricePrecision is the number of decimal places kept in a PricePoint.
const pricePrecision = 2

// point converts r, whose date must be valid, into its display shape.
func (r PriceRecord) point() PricePoint {
	on := r.Date.Date
	return PricePoint{
		Date:      on,
		Label:     on.Label(),
		FullLabel: on.FullLabel(),
		Open:      r.Open.Round(pricePrecision),
		Close:     r.Close.Round(pricePrecision),
		High:      r.High.Round(pricePrecision),
		Low:       r.Low.Round(pricePrecision),
	}
}
