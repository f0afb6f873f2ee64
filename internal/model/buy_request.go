package model

import "github.com/shopspring/decimal"

// BuyRequest is a customer order to buy gold-backed tokens. Status runs
// Pending -> Open/Completed on approval or Rejected. Financial fields
// come from the platform core and are never mutated here.
type BuyRequest struct {
	ID                int64           `json:"id"`
	CustomerName      string          `json:"customerName"`
	Amount            decimal.Decimal `json:"amount"`
	GoldGrams         decimal.Decimal `json:"goldGrams"`
	Rate              decimal.Decimal `json:"rate"`
	Fee               decimal.Decimal `json:"fee"`
	Currency          string          `json:"currency,omitempty"`
	PaymentMethod     string          `json:"paymentMethod,omitempty"`
	ReceiptImageURL   string          `json:"receiptImageUrl,omitempty"`
	Status            string          `json:"status"`
	TrDate            string          `json:"trDate"`
	RejectReason      string          `json:"rejectedReason,omitempty"`
	RejectReasonOther string          `json:"rejectedReasonOptional,omitempty"`
	Remarks           string          `json:"remarks,omitempty"`
	RemarkTags        []string        `json:"remarkTags,omitempty"`
}

func (b BuyRequest) RecordID() int64               { return b.ID }
func (b BuyRequest) RecordStatus() string          { return b.Status }
func (b BuyRequest) RecordDate() string            { return b.TrDate }
func (b BuyRequest) RecordAmount() decimal.Decimal { return b.Amount }
