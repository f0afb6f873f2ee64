package model

// RankPromotion is a request to promote a member to a higher rank in
// the platform's affiliate program. Status runs Pending -> Approved or
// Rejected.
type RankPromotion struct {
	ID                int64    `json:"id"`
	CustomerName      string   `json:"customerName"`
	CurrentRank       string   `json:"currentRank"`
	TargetRank        string   `json:"targetRank"`
	DirectReferrals   int      `json:"directReferrals"`
	Status            string   `json:"status"`
	DateRequest       string   `json:"dateRequest"`
	RejectReason      string   `json:"rejectedReason,omitempty"`
	RejectReasonOther string   `json:"rejectedReasonOptional,omitempty"`
	Remarks           string   `json:"remarks,omitempty"`
	RemarkTags        []string `json:"remarkTags,omitempty"`
}

func (r RankPromotion) RecordID() int64      { return r.ID }
func (r RankPromotion) RecordStatus() string { return r.Status }
func (r RankPromotion) RecordDate() string   { return r.DateRequest }
