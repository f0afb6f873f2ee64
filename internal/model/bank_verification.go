package model

// BankVerification is a customer-submitted bank account verification
// request. statusOfVerification is one of Pending, Approved, Rejected.
type BankVerification struct {
	ID                   int64    `json:"id"`
	CustomerName         string   `json:"customerName"`
	BankName             string   `json:"bankName"`
	AccountName          string   `json:"accountName"`
	AccountNumber        string   `json:"accountNumber"`
	BranchCode           string   `json:"branchCode,omitempty"`
	Country              string   `json:"country,omitempty"`
	ProofImageURL        string   `json:"proofImageUrl,omitempty"`
	StatusOfVerification string   `json:"statusOfVerification"`
	DateEntry            string   `json:"dateEntry"`
	RejectReason         string   `json:"rejectedReason,omitempty"`
	RejectReasonOther    string   `json:"rejectedReasonOptional,omitempty"`
	Remarks              string   `json:"remarks,omitempty"`
	RemarkTags           []string `json:"remarkTags,omitempty"`
}

func (b BankVerification) RecordID() int64      { return b.ID }
func (b BankVerification) RecordStatus() string { return b.StatusOfVerification }
func (b BankVerification) RecordDate() string   { return b.DateEntry }
