package models

import "time"

// OperationLog records a state-changing gateway operation (property save,
// room plan save, invitation action), written best-effort
type OperationLog struct {
	BaseModel
	Action     string    `gorm:"type:varchar(100);not null" json:"action"` // e.g. property_update, room_group_save, staff_invite
	Resource   string    `gorm:"type:varchar(100)" json:"resource"`
	OrgID      string    `gorm:"type:varchar(64)" json:"org_id"`
	PropertyID string    `gorm:"type:varchar(64)" json:"property_id"`
	UserID     string    `gorm:"type:varchar(64)" json:"user_id"`
	Details    string    `gorm:"type:text" json:"details"`
	Success    bool      `gorm:"default:true" json:"success"`
	Timestamp  time.Time `json:"timestamp"`
}
