package models

import "time"

// InvitationStatus is the lifecycle state of an invitation
type InvitationStatus string

const (
	InvitationPending InvitationStatus = "pending"
	InvitationUsed    InvitationStatus = "used"
	InvitationExpired InvitationStatus = "expired"
)

// Invitation is a pending staff invitation owned by the upstream API.
// Transitions: pending -> used (accepted), pending -> expired (time-based),
// pending -> cancelled (deleted by an admin). Resending re-issues the
// invitation without changing its identity.
type Invitation struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	OrganizationRole OrganizationRole `json:"organizationRole"`
	PropertyID       string           `json:"propertyId,omitempty"`
	PropertyRole     string           `json:"propertyRole,omitempty"`
	Shift            Shift            `json:"shift,omitempty"`
	Status           InvitationStatus `json:"status"`
	CreatedBy        string           `json:"createdBy"`
	CreatedAt        time.Time        `json:"createdAt"`
	ExpiresAt        time.Time        `json:"expiresAt"`
	UsedAt           *time.Time       `json:"usedAt,omitempty"`
}
