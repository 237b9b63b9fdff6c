// Package pricing implements the gold price calculator: invoice quotes,
// making-fee extraction, position profit/loss and karat conversion.
package pricing

import "errors"

var ErrInvalidInput = errors.New("pricing: invalid input")

// TradeMode selects the quote direction.
type TradeMode string

const (
	ModeBuy  TradeMode = "buy"
	ModeSell TradeMode = "sell"
)

// FeeType selects how the making fee is expressed.
type FeeType string

const (
	FeePercent FeeType = "percent"
	FeeFixed   FeeType = "fixed"
)

// QuoteInput describes a final-price calculation. Monetary values are
// rial per gram; percentages are whole numbers (5 means 5%).
type QuoteInput struct {
	Mode            TradeMode `json:"mode"`
	Weight          float64   `json:"weight"`
	PricePerGram    float64   `json:"pricePerGram"`
	MakingFee       float64   `json:"makingFee"`
	MakingFeeType   FeeType   `json:"makingFeeType"`
	SellerProfitPct float64   `json:"sellerProfitPercent"`
	VATPct          float64   `json:"vatPercent"`
}

// Quote is the invoice breakdown for a QuoteInput.
type Quote struct {
	BasePrice    float64 `json:"basePrice"`
	MakingFee    float64 `json:"makingFee"`
	SellerProfit float64 `json:"sellerProfit"`
	VAT          float64 `json:"vat"`
	FinalPrice   float64 `json:"finalPrice"`
}

// FinalPrice computes the invoice breakdown. VAT applies to the making
// fee and seller profit only, not to the gold value itself. A sell
// quote deducts the seller profit from the base and carries no fee or
// tax.
func FinalPrice(in QuoteInput) (Quote, error) {
	if in.Weight <= 0 || in.PricePerGram <= 0 {
		return Quote{}, ErrInvalidInput
	}
	if in.Mode != ModeBuy && in.Mode != ModeSell {
		return Quote{}, ErrInvalidInput
	}

	base := in.Weight * in.PricePerGram

	fee := in.MakingFee
	if in.MakingFeeType != FeeFixed {
		fee = base * in.MakingFee / 100
	}

	profit := base * in.SellerProfitPct / 100
	vat := (fee + profit) * in.VATPct / 100

	final := base + fee + profit + vat
	if in.Mode == ModeSell {
		final = base - profit
	}

	return Quote{
		BasePrice:    base,
		MakingFee:    fee,
		SellerProfit: profit,
		VAT:          vat,
		FinalPrice:   final,
	}, nil
}

// MakingFeeInput describes a making-fee extraction from an invoice.
type MakingFeeInput struct {
	Weight       float64 `json:"weight"`
	PricePerGram float64 `json:"pricePerGram"`
	InvoiceTotal float64 `json:"invoiceTotal"`
}

// MakingFeeResult is the fee implied by an invoice total.
type MakingFeeResult struct {
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// MakingFee derives the making fee hidden in an invoice total.
func MakingFee(in MakingFeeInput) (MakingFeeResult, error) {
	if in.Weight <= 0 || in.PricePerGram <= 0 || in.InvoiceTotal <= 0 {
		return MakingFeeResult{}, ErrInvalidInput
	}

	base := in.Weight * in.PricePerGram
	fee := in.InvoiceTotal - base

	percent := 0.0
	if base > 0 {
		percent = fee / base * 100
	}

	return MakingFeeResult{Amount: fee, Percent: percent}, nil
}

// ProfitLossInput describes a held position.
type ProfitLossInput struct {
	BuyPricePerGram     float64 `json:"buyPricePerGram"`
	Weight              float64 `json:"weight"`
	CurrentPricePerGram float64 `json:"currentPricePerGram"`
}

// ProfitLossResult is the unrealized result of a position.
type ProfitLossResult struct {
	Amount     float64 `json:"amount"`
	PercentChg float64 `json:"percentChange"`
	IsProfit   bool    `json:"isProfit"`
}

// ProfitLoss computes the unrealized profit or loss of a position.
func ProfitLoss(in ProfitLossInput) (ProfitLossResult, error) {
	if in.BuyPricePerGram <= 0 || in.Weight <= 0 || in.CurrentPricePerGram <= 0 {
		return ProfitLossResult{}, ErrInvalidInput
	}

	buyTotal := in.BuyPricePerGram * in.Weight
	currentTotal := in.CurrentPricePerGram * in.Weight
	diff := currentTotal - buyTotal

	pct := 0.0
	if buyTotal > 0 {
		pct = diff / buyTotal * 100
	}

	return ProfitLossResult{
		Amount:     diff,
		PercentChg: pct,
		IsProfit:   diff >= 0,
	}, nil
}

// KaratInput describes a per-gram price conversion between 18 and 24
// karat gold.
type KaratInput struct {
	SourceKarat  int     `json:"sourceKarat"`
	PricePerGram float64 `json:"pricePerGram"`
}

// KaratResult is the converted per-gram price.
type KaratResult struct {
	TargetKarat  int     `json:"targetKarat"`
	PricePerGram float64 `json:"pricePerGram"`
}

// ConvertKarat converts a per-gram price between the 18 and 24 karat
// grades. Other grades are rejected.
func ConvertKarat(in KaratInput) (KaratResult, error) {
	if in.PricePerGram <= 0 {
		return KaratResult{}, ErrInvalidInput
	}

	switch in.SourceKarat {
	case 18:
		return KaratResult{TargetKarat: 24, PricePerGram: in.PricePerGram * 24 / 18}, nil
	case 24:
		return KaratResult{TargetKarat: 18, PricePerGram: in.PricePerGram * 18 / 24}, nil
	default:
		return KaratResult{}, ErrInvalidInput
	}
}
