package model

import "github.com/shopspring/decimal"

// GoldConversion is a currency conversion (GCA) request converting a
// customer balance into USDAU. It has a post-approval disbursement
// step: Pending -> Approved -> Released, or Pending -> Rejected.
// Release requires a disbursement date and an evidentiary document.
type GoldConversion struct {
	ID                int64           `json:"id"`
	CustomerName      string          `json:"customerName"`
	FromCurrency      string          `json:"fromCurrency"`
	Amount            decimal.Decimal `json:"amount"`
	ConvertedUSDAU    decimal.Decimal `json:"convertedUsdau"`
	Rate              decimal.Decimal `json:"rate"`
	Fee               decimal.Decimal `json:"fee"`
	Status            string          `json:"status"`
	DateRequest       string          `json:"dateRequest"`
	ReleaseDate       string          `json:"releaseDate,omitempty"`
	ReleaseProofURL   string          `json:"releaseProofUrl,omitempty"`
	RejectReason      string          `json:"rejectedReason,omitempty"`
	RejectReasonOther string          `json:"rejectedReasonOptional,omitempty"`
	Remarks           string          `json:"remarks,omitempty"`
	RemarkTags        []string        `json:"remarkTags,omitempty"`
}

func (g GoldConversion) RecordID() int64               { return g.ID }
func (g GoldConversion) RecordStatus() string          { return g.Status }
func (g GoldConversion) RecordDate() string            { return g.DateRequest }
func (g GoldConversion) RecordAmount() decimal.Decimal { return g.Amount }
