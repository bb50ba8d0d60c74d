package upstream

import (
	"context"
	"net/http"
	"net/url"

	"pms-app-service/internal/domain/models"
)

// AdminUsersPage is the upstream user listing with its pending invitations
type AdminUsersPage struct {
	Users       []models.StaffMember `json:"users"`
	Invitations []models.Invitation  `json:"invitations"`
}

// ListUsers fetches the staff members and pending invitations of an organization
func (c *Client) ListUsers(ctx context.Context, orgID string) (*AdminUsersPage, error) {
	query := url.Values{"orgId": {orgID}}
	var page AdminUsersPage
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateUser creates a staff member directly (admin-created, password-bearing)
func (c *Client) CreateUser(ctx context.Context, member *models.StaffMember, password string) (*models.StaffMember, error) {
	body := struct {
		models.StaffMember
		Password string `json:"password"`
	}{StaffMember: *member, Password: password}

	var created models.StaffMember
	if err := c.do(ctx, http.MethodPost, "/api/admin/users", nil, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser patches a staff member. Email is immutable upstream and is
// never part of the patch payload.
func (c *Client) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*models.StaffMember, error) {
	var updated models.StaffMember
	if err := c.do(ctx, http.MethodPatch, "/api/admin/users/"+id, nil, updates, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser revokes a staff member's access (soft delete upstream)
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+id, nil, nil, nil)
}

// InviteUser issues a staff invitation
func (c *Client) InviteUser(ctx context.Context, invitation *models.Invitation) (*models.Invitation, error) {
	var created models.Invitation
	if err := c.do(ctx, http.MethodPost, "/api/admin/users/invite", nil, invitation, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ResendInvitation re-issues a pending invitation without changing its identity
func (c *Client) ResendInvitation(ctx context.Context, id string) (*models.Invitation, error) {
	body := map[string]string{"action": "resend"}
	var invitation models.Invitation
	if err := c.do(ctx, http.MethodPatch, "/api/admin/invitations/"+id, nil, body, &invitation); err != nil {
		return nil, err
	}
	return &invitation, nil
}

// CancelInvitation deletes a pending invitation
func (c *Client) CancelInvitation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/invitations/"+id, nil, nil, nil)
}

// SendTestEmail asks the upstream to send a test email to the address
func (c *Client) SendTestEmail(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/api/admin/test-email", nil, body, nil)
}
