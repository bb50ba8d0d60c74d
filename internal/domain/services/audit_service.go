package services

import (
	"time"

	"gorm.io/gorm"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/infrastructure/config"
)

// InterfaceAuditService defines the operation log interface
type InterfaceAuditService interface {
	Record(session models.SessionContext, action, resource, details string, success bool)
	ListLogs(session models.SessionContext, query models.PaginationQuery) ([]models.OperationLog, models.PaginationResult, error)
}

// AuditService writes one operation log row per state-changing gateway
// operation, best-effort: a logging failure never fails the operation
type AuditService struct {
	DB *gorm.DB
}

// NewAuditService creates a new audit service
func NewAuditService(db *gorm.DB) InterfaceAuditService {
	return &AuditService{DB: db}
}

// Record writes an operation log entry
func (s *AuditService) Record(session models.SessionContext, action, resource, details string, success bool) {
	entry := models.OperationLog{
		Action:     action,
		Resource:   resource,
		OrgID:      session.OrgID,
		PropertyID: session.PropertyID,
		UserID:     session.UserID,
		Details:    details,
		Success:    success,
		Timestamp:  time.Now(),
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		config.Warning("failed to record operation log %s/%s: %v", action, resource, err)
	}
}

// ListLogs returns one page of the organization's operation log,
// newest first when desc is set
func (s *AuditService) ListLogs(session models.SessionContext, query models.PaginationQuery) ([]models.OperationLog, models.PaginationResult, error) {
	query.Normalize()

	db := s.DB.Model(&models.OperationLog{}).Where("org_id = ?", session.OrgID)
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	order := "timestamp asc"
	if query.Desc {
		order = "timestamp desc"
	}

	var logs []models.OperationLog
	if err := db.Order(order).Offset(query.Offset()).Limit(query.PageSize).Find(&logs).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}
	return logs, models.NewPaginationResult(int(total), query.PageNum, query.PageSize), nil
}

// NoopAuditService discards operation log entries, used when the gateway
// database is unavailable and in tests
type NoopAuditService struct{}

// Record discards the entry
func (NoopAuditService) Record(models.SessionContext, string, string, string, bool) {}

// ListLogs reports an empty log
func (NoopAuditService) ListLogs(models.SessionContext, models.PaginationQuery) ([]models.OperationLog, models.PaginationResult, error) {
	return nil, models.PaginationResult{}, nil
}
