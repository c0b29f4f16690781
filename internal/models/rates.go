package models

import "github.com/shopspring/decimal"

// Quote is the body returned by one ambito variation endpoint.
type Quote struct {
	Compra         string `json:"compra"`
	Venta          string `json:"venta"`
	Fecha          string `json:"fecha"`
	Variacion      string `json:"variacion"`
	ClassVariacion string `json:"class-variacion"`
}

type Endpoint struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Outcome is the terminal state of one endpoint call: either Quote or Err is set.
type Outcome struct {
	Endpoint Endpoint
	Quote    *Quote
	Err      error
}

func (o Outcome) OK() bool { return o.Err == nil && o.Quote != nil }

type RateRecord struct {
	Label          string              `json:"label"`
	Buy            string              `json:"buy"`
	Sell           string              `json:"sell"`
	BuyValue       decimal.NullDecimal `json:"buy_value"`
	SellValue      decimal.NullDecimal `json:"sell_value"`
	Date           string              `json:"date"`
	Variation      string              `json:"variation"`
	ClassVariation ClassVariation      `json:"class_variation"`
	URL            string              `json:"url"`
}
