package stats

import "github.com/MTrazona/aurum-platform-admin-sub000/internal/model"

// StatusMap is the table-driven tri-state classification for one
// domain. Statuses listed in Approved count as approved, those in
// Rejected as rejected, everything else as pending. Keeping the
// mapping per-domain matters: buy/GAE/GCA treat working states like
// "Open" or "Released" as approved, while bank verifications only
// recognize the literal "Approved".
type StatusMap struct {
	Approved []string
	Rejected []string
}

// Group is the tri-state bucket a record classifies into.
type Group string

const (
	GroupApproved Group = "approved"
	GroupPending  Group = "pending"
	GroupRejected Group = "rejected"
)

// Classify places a status into its group. The partition is total:
// anything not explicitly approved or rejected is pending.
func (m StatusMap) Classify(status string) Group {
	for _, s := range m.Approved {
		if s == status {
			return GroupApproved
		}
	}
	for _, s := range m.Rejected {
		if s == status {
			return GroupRejected
		}
	}
	return GroupPending
}

// Per-domain classification tables. These intentionally differ and
// must not be unified.
var (
	BankStatusMap = StatusMap{
		Approved: []string{model.StatusApproved},
		Rejected: []string{model.StatusRejected},
	}

	BuyStatusMap = StatusMap{
		Approved: []string{model.StatusOpen, model.StatusCompleted},
		Rejected: []string{model.StatusRejected},
	}

	GoldAccumulationStatusMap = StatusMap{
		Approved: []string{model.StatusOpen, model.StatusCompleted},
		Rejected: []string{model.StatusRejected},
	}

	GoldConversionStatusMap = StatusMap{
		Approved: []string{model.StatusApproved, model.StatusReleased},
		Rejected: []string{model.StatusRejected},
	}

	USDAUStatusMap = StatusMap{
		Approved: []string{model.StatusCompleted},
		Rejected: []string{model.StatusRejected},
	}

	RankPromotionStatusMap = StatusMap{
		Approved: []string{model.StatusApproved},
		Rejected: []string{model.StatusRejected},
	}
)
