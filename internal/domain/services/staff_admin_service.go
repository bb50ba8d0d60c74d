package services

import (
	"context"
	"errors"
	"fmt"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/infrastructure/config"
	"pms-app-service/internal/infrastructure/upstream"
)

// ErrRoleNotAssignable is returned when an actor tries to grant a role
// above their own hierarchy level
var ErrRoleNotAssignable = errors.New("role is not assignable by the current user")

// InterfaceStaffAdminService defines the staff administration interface
type InterfaceStaffAdminService interface {
	ListUsers(ctx context.Context, session models.SessionContext) (*upstream.AdminUsersPage, error)
	CreateUser(ctx context.Context, session models.SessionContext, member *models.StaffMember, password string) (*models.StaffMember, error)
	UpdateUser(ctx context.Context, session models.SessionContext, id string, target models.OrganizationRole, updates map[string]interface{}) (*models.StaffMember, error)
	DeleteUser(ctx context.Context, session models.SessionContext, id string, target models.OrganizationRole) error
	Invite(ctx context.Context, session models.SessionContext, invitation *models.Invitation) (*models.Invitation, error)
	ResendInvitation(ctx context.Context, session models.SessionContext, id string) (*models.Invitation, error)
	CancelInvitation(ctx context.Context, session models.SessionContext, id string) error
	AssignableRoles(session models.SessionContext) []models.OrganizationRole
	SendTestEmail(ctx context.Context, email string) error
}

// StaffAdminService manages staff members and invitations through the
// upstream admin API. Every permission check goes through the single
// role-rank predicate; role lists are never re-declared per call site.
type StaffAdminService struct {
	Upstream *upstream.Client
	Drafts   InterfaceDraftService
	Audit    InterfaceAuditService
}

// NewStaffAdminService creates a new staff administration service
func NewStaffAdminService(client *upstream.Client, drafts InterfaceDraftService, audit InterfaceAuditService) InterfaceStaffAdminService {
	return &StaffAdminService{
		Upstream: client,
		Drafts:   drafts,
		Audit:    audit,
	}
}

// 1 ListUsers fetches the organization's staff members and pending invitations
func (s *StaffAdminService) ListUsers(ctx context.Context, session models.SessionContext) (*upstream.AdminUsersPage, error) {
	return s.Upstream.ListUsers(ctx, session.OrgID)
}

// 2 CreateUser creates a staff member directly (admin-created,
// password-bearing), subject to the actor's assignable range
func (s *StaffAdminService) CreateUser(ctx context.Context, session models.SessionContext, member *models.StaffMember, password string) (*models.StaffMember, error) {
	if !models.CanManage(session.Role, member.OrganizationRole) {
		return nil, fmt.Errorf("%w: %s cannot grant %s", ErrRoleNotAssignable, session.Role, member.OrganizationRole)
	}

	created, err := s.Upstream.CreateUser(ctx, member, password)
	if err != nil {
		s.Audit.Record(session, "staff_create", member.Email, err.Error(), false)
		return nil, err
	}
	s.Audit.Record(session, "staff_create", created.ID, "", true)
	return created, nil
}

// 3 UpdateUser patches a staff member. Email is immutable after creation
// and is stripped from the patch; managing the target requires rank.
func (s *StaffAdminService) UpdateUser(ctx context.Context, session models.SessionContext, id string, target models.OrganizationRole, updates map[string]interface{}) (*models.StaffMember, error) {
	if !models.CanManage(session.Role, target) {
		return nil, fmt.Errorf("%w: %s cannot manage %s", ErrRoleNotAssignable, session.Role, target)
	}
	delete(updates, "email")

	if raw, ok := updates["organizationRole"]; ok {
		newRole, _ := raw.(string)
		if !models.CanManage(session.Role, models.OrganizationRole(newRole)) {
			return nil, fmt.Errorf("%w: %s cannot grant %s", ErrRoleNotAssignable, session.Role, newRole)
		}
	}

	updated, err := s.Upstream.UpdateUser(ctx, id, updates)
	if err != nil {
		s.Audit.Record(session, "staff_update", id, err.Error(), false)
		return nil, err
	}
	s.Audit.Record(session, "staff_update", id, "", true)
	return updated, nil
}

// 4 DeleteUser revokes a staff member's access; the identity record
// survives upstream
func (s *StaffAdminService) DeleteUser(ctx context.Context, session models.SessionContext, id string, target models.OrganizationRole) error {
	if !models.CanManage(session.Role, target) {
		return fmt.Errorf("%w: %s cannot manage %s", ErrRoleNotAssignable, session.Role, target)
	}

	if err := s.Upstream.DeleteUser(ctx, id); err != nil {
		s.Audit.Record(session, "staff_delete", id, err.Error(), false)
		return err
	}
	s.Audit.Record(session, "staff_delete", id, "", true)
	return nil
}

// 5 Invite issues a staff invitation, restricted to the actor's
// assignable roles, and clears the invite form draft on success
func (s *StaffAdminService) Invite(ctx context.Context, session models.SessionContext, invitation *models.Invitation) (*models.Invitation, error) {
	if !models.CanManage(session.Role, invitation.OrganizationRole) {
		return nil, fmt.Errorf("%w: %s cannot grant %s", ErrRoleNotAssignable, session.Role, invitation.OrganizationRole)
	}

	created, err := s.Upstream.InviteUser(ctx, invitation)
	if err != nil {
		s.Audit.Record(session, "staff_invite", invitation.Email, err.Error(), false)
		return nil, err
	}

	if err := s.Drafts.Clear(session.FormKey(models.DraftKeyStaffInvite)); err != nil && !errors.Is(err, ErrDraftNotFound) {
		config.Warning("failed to clear invite draft: %v", err)
	}
	s.Audit.Record(session, "staff_invite", created.ID, "", true)
	return created, nil
}

// 6 ResendInvitation re-issues a pending invitation without changing its identity
func (s *StaffAdminService) ResendInvitation(ctx context.Context, session models.SessionContext, id string) (*models.Invitation, error) {
	invitation, err := s.Upstream.ResendInvitation(ctx, id)
	if err != nil {
		s.Audit.Record(session, "invitation_resend", id, err.Error(), false)
		return nil, err
	}
	s.Audit.Record(session, "invitation_resend", id, "", true)
	return invitation, nil
}

// 7 CancelInvitation deletes a pending invitation
func (s *StaffAdminService) CancelInvitation(ctx context.Context, session models.SessionContext, id string) error {
	if err := s.Upstream.CancelInvitation(ctx, id); err != nil {
		s.Audit.Record(session, "invitation_cancel", id, err.Error(), false)
		return err
	}
	s.Audit.Record(session, "invitation_cancel", id, "", true)
	return nil
}

// 8 AssignableRoles returns the roles the current user may grant
func (s *StaffAdminService) AssignableRoles(session models.SessionContext) []models.OrganizationRole {
	return models.AssignableRoles(session.Role)
}

// 9 SendTestEmail asks the upstream to deliver a test email
func (s *StaffAdminService) SendTestEmail(ctx context.Context, email string) error {
	return s.Upstream.SendTestEmail(ctx, email)
}
