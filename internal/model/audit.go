package model

import (
	"time"

	"github.com/google/uuid"
)

// Review workflow actions recorded in the audit trail
const (
	ActionApproveRequest = "APPROVE_REQUEST"
	ActionRejectRequest  = "REJECT_REQUEST"
	ActionUpdateRemarks  = "UPDATE_REMARKS"
	ActionReleaseRequest = "RELEASE_REQUEST"
	ActionDeleteCharity  = "DELETE_CHARITY"
	ActionUploadProof    = "UPLOAD_PROOF"
)

// AuditLog tracks Who, What, and When for every review action taken
// against the platform core API.
type AuditLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable gracefully if automated bot
	User      *User      `gorm:"foreignKey:UserID" json:"user"`
	Action    string     `gorm:"type:varchar(50);not null;index" json:"action"`
	Domain    string     `gorm:"type:varchar(50);not null;index" json:"domain"`
	EntityID  string     `gorm:"type:varchar(50);index" json:"entity_id"` // Platform record id
	Details   string     `gorm:"type:jsonb" json:"details"`               // Serialized JSON payload of the action
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}
