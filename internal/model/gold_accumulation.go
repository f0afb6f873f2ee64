package model

import "github.com/shopspring/decimal"

// GoldAccumulation is a gold-accumulation enrollment (GAE) request: the
// customer commits to a recurring monthly purchase. Status runs
// Pending -> Open/Completed on approval or Rejected; Open means the
// plan is active and still accumulating.
type GoldAccumulation struct {
	ID                int64           `json:"id"`
	CustomerName      string          `json:"customerName"`
	MonthlyAmount     decimal.Decimal `json:"monthlyAmount"`
	TotalGrams        decimal.Decimal `json:"totalGrams"`
	TermMonths        int             `json:"termMonths"`
	Currency          string          `json:"currency,omitempty"`
	Status            string          `json:"status"`
	DateRequest       string          `json:"dateRequest"`
	RejectReason      string          `json:"rejectedReason,omitempty"`
	RejectReasonOther string          `json:"rejectedReasonOptional,omitempty"`
	Remarks           string          `json:"remarks,omitempty"`
	RemarkTags        []string        `json:"remarkTags,omitempty"`
}

func (g GoldAccumulation) RecordID() int64               { return g.ID }
func (g GoldAccumulation) RecordStatus() string          { return g.Status }
func (g GoldAccumulation) RecordDate() string            { return g.DateRequest }
func (g GoldAccumulation) RecordAmount() decimal.Decimal { return g.MonthlyAmount }
