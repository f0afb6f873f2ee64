package model

import "github.com/shopspring/decimal"

// Domain identifies one reviewable request collection on the platform.
// The value doubles as the resource path segment on the core API.
type Domain string

const (
	DomainBankVerification Domain = "bank-verifications"
	DomainBuyRequest       Domain = "buy-requests"
	DomainGoldAccumulation Domain = "gold-accumulations"
	DomainGoldConversion   Domain = "gold-conversions"
	DomainUSDAUWithdrawal  Domain = "usdau-withdrawals"
	DomainRankPromotion    Domain = "rank-promotions"
	DomainCharity          Domain = "charities"
)

// Review status constants. Each domain uses a subset; buy and
// gold-accumulation requests additionally use StatusOpen as a
// post-approval working state, and gold conversions end in
// StatusReleased after disbursement.
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusOpen      = "Open"
	StatusCompleted = "Completed"
	StatusReleased  = "Released"
)

// ReasonOther marks a rejection whose reason is supplied as free text.
const ReasonOther = "Other"

// RejectReasons is the fixed set offered to reviewers. Anything else
// must go through ReasonOther with accompanying text.
var RejectReasons = []string{
	"Invalid Documents",
	"Mismatched Account Name",
	"Insufficient Funds",
	"Duplicate Request",
	ReasonOther,
}

// RemarkTags is the fixed vocabulary for remark annotations.
var RemarkTags = []string{
	"On Hold",
	"Follow Up",
	"Escalated",
	"Verified by Phone",
}

// ReviewRecord is the common shape the review engine and stats
// aggregator need from every request record. RecordDate returns the
// raw date string from the backend; it may be empty or unparseable and
// is only interpreted at bucketing time.
type ReviewRecord interface {
	RecordID() int64
	RecordStatus() string
	RecordDate() string
}

// ValuedRecord is implemented by records carrying a principal amount,
// used for per-bucket volume sums on the dashboard.
type ValuedRecord interface {
	RecordAmount() decimal.Decimal
}
