package models

import "encoding/json"

// Form draft storage keys. One fixed key per form, scoped by entity id
// when the form edits a specific entity.
const (
	DraftKeyGeneralSettings = "general_settings_draft"
	DraftKeyRoomGroup       = "room_group_draft"
	DraftKeyStaffInvite     = "staff_invite_draft"
)

// FormDraft is the gateway-owned snapshot of in-progress form edits,
// persisted under a fixed storage key and cleared on successful submit
type FormDraft struct {
	BaseModel
	StorageKey string `gorm:"type:varchar(191);uniqueIndex;not null" json:"storage_key"`
	Values     []byte `gorm:"type:json" json:"values"`
}

// Decode unmarshals the stored snapshot into a field map
func (d *FormDraft) Decode() (map[string]interface{}, error) {
	values := make(map[string]interface{})
	if len(d.Values) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(d.Values, &values); err != nil {
		return nil, err
	}
	return values, nil
}
