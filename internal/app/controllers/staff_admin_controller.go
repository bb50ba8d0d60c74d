package controllers

import (
	"errors"

	"pms-app-service/internal/app/middleware"
	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/domain/services"
	"pms-app-service/internal/domain/services/container"
	"pms-app-service/internal/error/code"
	"pms-app-service/internal/error/response"
	"pms-app-service/internal/infrastructure/upstream"

	"github.com/gin-gonic/gin"
)

// InterfaceStaffAdminController defines the staff admin controller interface
type InterfaceStaffAdminController interface {
	GetUsers()
	CreateUser()
	UpdateUser()
	DeleteUser()
	InviteUser()
	ResendInvitation()
	CancelInvitation()
	GetAssignableRoles()
	SendTestEmail()
	GetOperationLogs()
}

// StaffAdminController handles staff member and invitation administration
type StaffAdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStaffAdminController creates a new staff admin controller
func NewStaffAdminController(ctx *gin.Context, container *container.ServiceContainer) *StaffAdminController {
	return &StaffAdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// StaffCreateRequest creates a staff member directly
type StaffCreateRequest struct {
	Name             string                      `json:"name" binding:"required"`
	Email            string                      `json:"email" binding:"required,email"`
	Phone            string                      `json:"phone" binding:"omitempty,phone"`
	Password         string                      `json:"password" binding:"required,min=8"`
	OrganizationRole models.OrganizationRole     `json:"organizationRole" binding:"required,orgrole"`
	Assignments      []models.PropertyAssignment `json:"assignments"`
}

// StaffUpdateRequest patches a staff member. The target's current role
// is required for the permission check; email changes are ignored.
type StaffUpdateRequest struct {
	TargetRole models.OrganizationRole `json:"targetRole" binding:"required,orgrole"`
	Updates    map[string]interface{}  `json:"updates" binding:"required"`
}

// StaffInviteRequest issues an invitation
type StaffInviteRequest struct {
	Email            string                  `json:"email" binding:"required,email"`
	Phone            string                  `json:"phone" binding:"omitempty,phone"`
	OrganizationRole models.OrganizationRole `json:"organizationRole" binding:"required,orgrole"`
	PropertyID       string                  `json:"propertyId"`
	PropertyRole     string                  `json:"propertyRole"`
	Shift            models.Shift            `json:"shift"`
}

// TestEmailRequest asks the upstream to deliver a test email
type TestEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// HandleStaffAdminFunc returns a gin handler dispatching to the staff admin controller
func HandleStaffAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStaffAdminController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "createUser":
			controller.CreateUser()
		case "updateUser":
			controller.UpdateUser()
		case "deleteUser":
			controller.DeleteUser()
		case "inviteUser":
			controller.InviteUser()
		case "resendInvitation":
			controller.ResendInvitation()
		case "cancelInvitation":
			controller.CancelInvitation()
		case "getAssignableRoles":
			controller.GetAssignableRoles()
		case "sendTestEmail":
			controller.SendTestEmail()
		case "getOperationLogs":
			controller.GetOperationLogs()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *StaffAdminController) session() (models.SessionContext, bool) {
	session, ok := middleware.GetSession(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
	}
	return session, ok
}

// 1 GetUsers lists staff members and pending invitations together
// @Summary List staff and invitations
// @Tags StaffAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Router /admin/users [get]
func (c *StaffAdminController) GetUsers() {
	session, ok := c.session()
	if !ok {
		return
	}

	staffService := c.Container.GetService("staff_admin").(services.InterfaceStaffAdminService)
	page, err := staffService.ListUsers(c.Ctx.Request.Context(), session)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to list users: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, page)
}

// 2 CreateUser creates a staff member within the actor's assignable range
// @Summary Create a staff member
// @Tags StaffAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body StaffCreateRequest true "Staff member"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/users [post]
func (c *StaffAdminController) CreateUser() {
	session, ok := c.session()
	if !ok {
		return
	}

	var req StaffCreateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "invalid request body: "+err.Error(), nil)
		return
	}

	member := &models.StaffMember{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		OrganizationRole: req.OrganizationRole,
		Assignments:      req.Assignments,
	}

	staffService := c.Container.GetService("staff_admin").(services.InterfaceStaffAdminService)
	created, err := staffService.CreateUser(c.Ctx.Request.Context(), session, member, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrRoleNotAssignable) {
			response.FailWithMessage(c.Ctx, code.ErrStaffRoleNotAssignable, err.Error(), nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to create user: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, created)
}

// 3 UpdateUser patches a staff member, email excluded
// @Summary Update a staff member
// @Description Applies the submitted field updates. Email is immutable and silently dropped from the patch.
// @Tags StaffAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param patch body StaffUpdateRequest true "Target role and updates"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/users/{id} [patch]
func (c *StaffAdminController) UpdateUser() {
	session, ok := c.session()
	if !ok {
		return
	}

	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "user id is required")
		return
	}

	var req StaffUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "invalid request body: "+err.Error(), nil)
		return
	}

	staffService := c.Container.GetService("staff_admin").(services.InterfaceStaffAdminService)
	updated, err := staffService.UpdateUser(c.Ctx.Request.Context(), session, id, req.TargetRole, req.Updates)
	if err != nil {
		if errors.Is(err, services.ErrRoleNotAssignable) {
			response.FailWithMessage(c.Ctx, code.ErrStaffRoleNotAssignable, err.Error(), nil)
			return
		}
		if errors.Is(err, upstream.ErrNotFound) {
			response.FailWithMessage(c.Ctx, code.ErrStaffNotFound, "staff member does not exist", nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to update user: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, updated)
}

// 4 DeleteUser revokes a staff member's access
// @Summary Delete a staff member
// @Tags StaffAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param targetRole query string true "Target's current role"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id} [delete]
func (c *StaffAdminController) DeleteUser() {
	session, ok := c.session()
	if !ok {
		return
	}

	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "user id is required")
		return
	}
	targetRole := models.OrganizationRole(c.Ctx.Query("targetRole"))

	staffService := c.Container.GetService("staff_admin").(services.InterfaceStaffAdminService)
	if err := staffService.DeleteUser(c.Ctx.Request.Context(), session, id, targetRole); err != nil {
		if errors.Is(err, services.ErrRoleNotAssignable) {
			response.FailWithMessage(c.Ctx, code.ErrStaffRoleNotAssignable, err.Error(), nil)
			return
		}
		if errors.Is(err, upstream.ErrNotFound) {
			response.FailWithMessage(c.Ctx, code.ErrStaffNotFound, "staff member does not exist", nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to delete user: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 5 InviteUser issues an invitation within the actor's assignable range
// @Summary Invite a staff member
// @Tags StaffAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invitation body StaffInviteRequest true "Invitation"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/invitations [post]
func (c *StaffAdminController) InviteUser() {
	session, ok := c.session()
	if !ok {
		return
	}

	var req StaffInviteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "invalid request body: "+err.Error(), nil)
		return
	}

	invitation := &models.Invitation{
		Email:            req.Email,
		Phone:            req.Phone,
		OrganizationRole: req.OrganizationRole,
		PropertyID:       req.PropertyID,
		PropertyRole:     req.PropertyRole,
		Shift:            req.Shift,
		CreatedBy:        session.UserID,
	}

	staffService := c.Container.GetService("staff_admin").(services.InterfaceStaffAdminService)
	created, err := staffService.Invite(c.Ctx.Request.Context(), session, invitation)
	if err != nil {
		if errors.Is(err, services.ErrRoleNotAssignable) {
			response.FailWithMessage(c.Ctx, code.ErrStaffRoleNotAssignable, err.Error(), nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to send invitation: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, created)
}

// 6 ResendInvitation re-issues a pending invitation
// @Summary Resend an invitation
// @Tags StaffAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /admin/invitations/{id}/resend [post]
func (c *StaffAdminController) ResendInvitation() {
	session, ok := c.session()
	if !ok {
		return
	}

	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "invitation id is required")
		return
	}

	staffService := c.Container.GetService("staff_admin").(services.InterfaceStaffAdminService)
	invitation, err := staffService.ResendInvitation(c.Ctx.Request.Context(), session, id)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			response.FailWithMessage(c.Ctx, code.ErrInvitationNotFound, "invitation does not exist", nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to resend invitation: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, invitation)
}

// 7 CancelInvitation deletes a pending invitation
// @Summary Cancel an invitation
// @Tags StaffAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /admin/invitations/{id} [delete]
func (c *StaffAdminController) CancelInvitation() {
	session, ok := c.session()
	if !ok {
		return
	}

	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "invitation id is required")
		return
	}

	staffService := c.Container.GetService("staff_admin").(services.InterfaceStaffAdminService)
	if err := staffService.CancelInvitation(c.Ctx.Request.Context(), session, id); err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			response.FailWithMessage(c.Ctx, code.ErrInvitationNotFound, "invitation does not exist", nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to cancel invitation: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 8 GetAssignableRoles lists the roles the actor may grant
// @Summary List assignable roles
// @Tags StaffAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/roles [get]
func (c *StaffAdminController) GetAssignableRoles() {
	session, ok := c.session()
	if !ok {
		return
	}

	staffService := c.Container.GetService("staff_admin").(services.InterfaceStaffAdminService)
	response.Success(c.Ctx, staffService.AssignableRoles(session))
}

// 9 SendTestEmail delivers a test email through the upstream mailer
// @Summary Send a test email
// @Tags StaffAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TestEmailRequest true "Recipient"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Router /admin/test-email [post]
func (c *StaffAdminController) SendTestEmail() {
	if _, ok := c.session(); !ok {
		return
	}

	var req TestEmailRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "invalid request body: "+err.Error(), nil)
		return
	}

	staffService := c.Container.GetService("staff_admin").(services.InterfaceStaffAdminService)
	if err := staffService.SendTestEmail(c.Ctx.Request.Context(), req.Email); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to send test email: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 10 GetOperationLogs pages through the organization's gateway operation log
// @Summary List operation log entries
// @Description Returns one page of the organization's gateway-side operation log, newest first when desc is set.
// @Tags StaffAdmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pageNum query int false "Page number, 1-based"
// @Param pageSize query int false "Page size, capped at 100"
// @Param desc query bool false "Newest first"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /admin/operation-logs [get]
func (c *StaffAdminController) GetOperationLogs() {
	session, ok := c.session()
	if !ok {
		return
	}

	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "invalid pagination query: "+err.Error(), nil)
		return
	}

	auditService := c.Container.GetService("audit").(services.InterfaceAuditService)
	logs, pagination, err := auditService.ListLogs(session, query)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"logs": logs, "pagination": pagination})
}
