package services

import (
	"context"
	"errors"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/infrastructure/config"
	"pms-app-service/internal/infrastructure/upstream"
)

// LoadMode selects how the general settings form initializes
type LoadMode string

const (
	// ModeExisting loads canonical settings for the current scope
	ModeExisting LoadMode = "existing"
	// ModeNewProperty skips the fetch entirely and resets to defaults
	ModeNewProperty LoadMode = "new"
)

// InterfaceSettingsService defines the settings loader interface
type InterfaceSettingsService interface {
	LoadGeneral(ctx context.Context, session models.SessionContext, mode LoadMode) (*models.GeneralSettings, error)
	Reconcile(current, remote *models.GeneralSettings, interacted bool) *models.GeneralSettings
	SaveGeneral(ctx context.Context, session models.SessionContext, settings *models.GeneralSettings) (*models.GeneralSettings, error)
}

// SettingsService loads and saves the general settings form
type SettingsService struct {
	Upstream *upstream.Client
	Drafts   InterfaceDraftService
	Audit    InterfaceAuditService
}

// NewSettingsService creates a new settings service
func NewSettingsService(client *upstream.Client, drafts InterfaceDraftService, audit InterfaceAuditService) InterfaceSettingsService {
	return &SettingsService{
		Upstream: client,
		Drafts:   drafts,
		Audit:    audit,
	}
}

// 1 LoadGeneral fetches canonical settings for the session scope. An
// upstream 404 means "not configured yet": defaults are returned without
// an error. New-property mode never fetches.
func (s *SettingsService) LoadGeneral(ctx context.Context, session models.SessionContext, mode LoadMode) (*models.GeneralSettings, error) {
	if mode == ModeNewProperty {
		return models.DefaultGeneralSettings(), nil
	}

	settings, err := s.Upstream.GetGeneralSettings(ctx, session.OrgID, session.PropertyID)
	if errors.Is(err, upstream.ErrNotFound) {
		return models.DefaultGeneralSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// 2 Reconcile decides whether freshly-fetched remote data may replace the
// current form state. Once the user has interacted with any field the
// remote result is discarded for the remainder of the form's life.
func (s *SettingsService) Reconcile(current, remote *models.GeneralSettings, interacted bool) *models.GeneralSettings {
	if interacted || remote == nil {
		return current
	}
	populated := *remote
	return &populated
}

// 3 SaveGeneral persists the settings upstream and clears the form draft
func (s *SettingsService) SaveGeneral(ctx context.Context, session models.SessionContext, settings *models.GeneralSettings) (*models.GeneralSettings, error) {
	saved, err := s.Upstream.SaveGeneralSettings(ctx, session.OrgID, settings)
	if err != nil {
		s.Audit.Record(session, "settings_save", "general_settings", err.Error(), false)
		return nil, err
	}

	if err := s.Drafts.Clear(session.FormKey(models.DraftKeyGeneralSettings)); err != nil {
		config.Warning("failed to clear settings draft: %v", err)
	}
	s.Audit.Record(session, "settings_save", "general_settings", "", true)
	return saved, nil
}
