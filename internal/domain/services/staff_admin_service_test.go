package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"pms-app-service/internal/domain/models"
)

type adminUpstream struct {
	mu          sync.Mutex
	lastPatch   map[string]interface{}
	inviteCalls int32
}

func (u *adminUpstream) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/admin/users":
			var body models.StaffMember
			json.NewDecoder(r.Body).Decode(&body)
			body.ID = "u-new"
			json.NewEncoder(w).Encode(body)
		case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/api/admin/users/"):
			var patch map[string]interface{}
			json.NewDecoder(r.Body).Decode(&patch)
			u.mu.Lock()
			u.lastPatch = patch
			u.mu.Unlock()
			json.NewEncoder(w).Encode(models.StaffMember{ID: strings.TrimPrefix(r.URL.Path, "/api/admin/users/")})
		case r.Method == http.MethodPost && r.URL.Path == "/api/admin/users/invite":
			atomic.AddInt32(&u.inviteCalls, 1)
			var invitation models.Invitation
			json.NewDecoder(r.Body).Decode(&invitation)
			invitation.ID = "inv-new"
			invitation.Status = models.InvitationPending
			json.NewEncoder(w).Encode(invitation)
		default:
			http.NotFound(w, r)
		}
	})
}

func newStaffAdminService(t *testing.T, fake *adminUpstream) InterfaceStaffAdminService {
	t.Helper()
	client := newTestUpstream(t, fake.handler())
	return NewStaffAdminService(client, &recordingDrafts{}, NoopAuditService{})
}

func managerSession() models.SessionContext {
	session := testSession()
	session.Role = models.RolePropertyMgr
	return session
}

func TestCreateUserRejectsRoleAboveActor(t *testing.T) {
	fake := &adminUpstream{}
	svc := newStaffAdminService(t, fake)

	_, err := svc.CreateUser(context.Background(), managerSession(), &models.StaffMember{
		Email:            "new@hotel.test",
		OrganizationRole: models.RoleOrgAdmin,
	}, "secret-pass")
	require.ErrorIs(t, err, ErrRoleNotAssignable)
}

func TestCreateUserWithinAssignableRange(t *testing.T) {
	fake := &adminUpstream{}
	svc := newStaffAdminService(t, fake)

	created, err := svc.CreateUser(context.Background(), managerSession(), &models.StaffMember{
		Email:            "desk@hotel.test",
		OrganizationRole: models.RoleFrontDesk,
	}, "secret-pass")
	require.NoError(t, err)
	require.Equal(t, "u-new", created.ID)
}

func TestUpdateUserStripsEmailFromPatch(t *testing.T) {
	fake := &adminUpstream{}
	svc := newStaffAdminService(t, fake)

	_, err := svc.UpdateUser(context.Background(), testSession(), "u1", models.RoleFrontDesk, map[string]interface{}{
		"name":  "New Name",
		"email": "changed@hotel.test",
	})
	require.NoError(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Contains(t, fake.lastPatch, "name")
	require.NotContains(t, fake.lastPatch, "email", "email is immutable after creation")
}

func TestUpdateUserRejectsRoleEscalation(t *testing.T) {
	fake := &adminUpstream{}
	svc := newStaffAdminService(t, fake)

	_, err := svc.UpdateUser(context.Background(), managerSession(), "u1", models.RoleFrontDesk, map[string]interface{}{
		"organizationRole": string(models.RoleOrgAdmin),
	})
	require.ErrorIs(t, err, ErrRoleNotAssignable)
	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Nil(t, fake.lastPatch, "a rejected patch never reaches the upstream")
}

func TestUpdateUserRejectsHigherRankedTarget(t *testing.T) {
	svc := newStaffAdminService(t, &adminUpstream{})

	_, err := svc.UpdateUser(context.Background(), managerSession(), "u9", models.RoleOrgAdmin, map[string]interface{}{
		"name": "X",
	})
	require.ErrorIs(t, err, ErrRoleNotAssignable)
}

func TestInviteClearsDraftOnSuccess(t *testing.T) {
	fake := &adminUpstream{}
	client := newTestUpstream(t, fake.handler())
	drafts := &recordingDrafts{}
	svc := NewStaffAdminService(client, drafts, NoopAuditService{})

	created, err := svc.Invite(context.Background(), testSession(), &models.Invitation{
		Email:            "invitee@hotel.test",
		OrganizationRole: models.RoleFrontDesk,
	})
	require.NoError(t, err)
	require.Equal(t, "inv-new", created.ID)
	require.Equal(t, models.InvitationPending, created.Status)

	cleared := drafts.clearedKeys()
	require.Len(t, cleared, 1)
	require.Contains(t, cleared[0], models.DraftKeyStaffInvite)
}

func TestInviteRejectsUnassignableRole(t *testing.T) {
	fake := &adminUpstream{}
	svc := newStaffAdminService(t, fake)

	_, err := svc.Invite(context.Background(), managerSession(), &models.Invitation{
		Email:            "invitee@hotel.test",
		OrganizationRole: models.RoleSuperAdmin,
	})
	require.ErrorIs(t, err, ErrRoleNotAssignable)
	require.Zero(t, atomic.LoadInt32(&fake.inviteCalls))
}

func TestAssignableRolesFollowHierarchy(t *testing.T) {
	svc := newStaffAdminService(t, &adminUpstream{})

	roles := svc.AssignableRoles(managerSession())
	require.Equal(t, []models.OrganizationRole{
		models.RolePropertyMgr,
		models.RoleFrontDesk,
		models.RoleMaintenance,
		models.RoleHousekeeping,
	}, roles)

	admin := testSession()
	admin.Role = models.RoleOrgAdmin
	require.Contains(t, svc.AssignableRoles(admin), models.RoleOrgAdmin)
	require.NotContains(t, svc.AssignableRoles(admin), models.RoleSuperAdmin)
}
