package models

// SessionContext carries the identity scope of a request.
// It is derived once by the session middleware (JWT claims with cookie
// fallback) and passed explicitly into services, never read ad hoc.
type SessionContext struct {
	UserID     string           `json:"userId"`
	OrgID      string           `json:"orgId"`
	PropertyID string           `json:"propertyId"`
	Role       OrganizationRole `json:"role"`
}

// FormKey scopes a draft storage key to the session's organization and
// property, so concurrent editors do not overwrite each other's drafts
func (s SessionContext) FormKey(base string) string {
	key := base
	if s.OrgID != "" {
		key += ":" + s.OrgID
	}
	if s.PropertyID != "" {
		key += ":" + s.PropertyID
	}
	return key
}
