package model

import "github.com/shopspring/decimal"

// USDAUWithdrawal is a request to withdraw USDAU tokens to an external
// wallet. Status runs Pending -> Completed or Rejected. Withdrawal
// volume trends use a 7-day daily window instead of the monthly one.
type USDAUWithdrawal struct {
	ID                int64           `json:"id"`
	CustomerName      string          `json:"customerName"`
	Amount            decimal.Decimal `json:"amount"`
	Fee               decimal.Decimal `json:"fee"`
	WalletAddress     string          `json:"walletAddress"`
	Network           string          `json:"network,omitempty"`
	TxHash            string          `json:"txHash,omitempty"`
	Status            string          `json:"status"`
	TrDate            string          `json:"trDate"`
	RejectReason      string          `json:"rejectedReason,omitempty"`
	RejectReasonOther string          `json:"rejectedReasonOptional,omitempty"`
	Remarks           string          `json:"remarks,omitempty"`
	RemarkTags        []string        `json:"remarkTags,omitempty"`
}

func (u USDAUWithdrawal) RecordID() int64               { return u.ID }
func (u USDAUWithdrawal) RecordStatus() string          { return u.Status }
func (u USDAUWithdrawal) RecordDate() string            { return u.TrDate }
func (u USDAUWithdrawal) RecordAmount() decimal.Decimal { return u.Amount }
