package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/infrastructure/config"
	"pms-app-service/internal/infrastructure/upstream"
	"pms-app-service/pkg/reconcile"
)

// RoomPlanSaveResult reports the outcome of a group save: the patched
// canonical group plus any per-room deletion failures. Deletion conflicts
// do not abort the save; partial completion is accepted and reported.
type RoomPlanSaveResult struct {
	Group        *models.RoomGroup  `json:"group"`
	DeleteErrors []models.RoomError `json:"deleteErrors,omitempty"`
}

// InterfaceRoomPlanService defines the room types editor interface
type InterfaceRoomPlanService interface {
	LoadGroup(ctx context.Context, name string) (*models.RoomGroup, error)
	Reorder(groups []models.RoomGroup, from, to int) ([]models.RoomGroup, error)
	SaveGroup(ctx context.Context, session models.SessionContext, original *models.RoomGroup, submitted *models.RoomGroup) (*RoomPlanSaveResult, error)
}

// RoomPlanService edits the ordered room type collection and persists a
// group's room list by diffing the submission against the original
type RoomPlanService struct {
	Upstream *upstream.Client
	Drafts   InterfaceDraftService
	Notifier InterfaceRefreshNotifier
	Audit    InterfaceAuditService
}

// NewRoomPlanService creates a new room plan service
func NewRoomPlanService(client *upstream.Client, drafts InterfaceDraftService, notifier InterfaceRefreshNotifier, audit InterfaceAuditService) InterfaceRoomPlanService {
	return &RoomPlanService{
		Upstream: client,
		Drafts:   drafts,
		Notifier: notifier,
		Audit:    audit,
	}
}

// 1 LoadGroup fetches a room type and its rooms for the detail panel
func (s *RoomPlanService) LoadGroup(ctx context.Context, name string) (*models.RoomGroup, error) {
	return s.Upstream.GetRoomGroupByName(ctx, name)
}

// 2 Reorder moves a group row to a new index with a stable array move;
// underlying ids are never renumbered
func (s *RoomPlanService) Reorder(groups []models.RoomGroup, from, to int) ([]models.RoomGroup, error) {
	if from < 0 || from >= len(groups) || to < 0 || to >= len(groups) {
		return nil, fmt.Errorf("reorder position out of range: %d -> %d", from, to)
	}
	return reconcile.Move(groups, from, to), nil
}

// 3 SaveGroup diffs the submitted room list against the original and
// issues the corresponding upstream calls:
//   - deletions first, independently per room and concurrently; a
//     conflict surfaces as a named per-room error without aborting
//     sibling deletions
//   - updates batched into one bulk call
//   - creations one call per room, concurrently
//
// Any update or create failure aborts the save and leaves local state
// unmodified. After all phases settle the group is patched with the
// canonical records and the refresh collaborator is notified.
func (s *RoomPlanService) SaveGroup(ctx context.Context, session models.SessionContext, original, submitted *models.RoomGroup) (*RoomPlanSaveResult, error) {
	diff := reconcile.Diff(original.Rooms, submitted.Rooms, func(r models.Room) string { return r.ID })

	deleteErrors, deletedIDs := s.deletePhase(ctx, diff.ToDelete)

	updated, err := s.updatePhase(ctx, diff.ToUpdate)
	if err != nil {
		s.Audit.Record(session, "room_group_save", submitted.Name, err.Error(), false)
		return nil, err
	}

	created, err := s.createPhase(ctx, submitted.Name, diff.ToCreate)
	if err != nil {
		s.Audit.Record(session, "room_group_save", submitted.Name, err.Error(), false)
		return nil, err
	}

	// Group-level fields are saved as a unit once the room phases settle.
	patched := *submitted
	patched.Rooms = patchRooms(original.Rooms, submitted.Rooms, updated, created, deletedIDs)
	saved, err := s.Upstream.SaveRoomGroupByName(ctx, &patched)
	if err != nil {
		s.Audit.Record(session, "room_group_save", submitted.Name, err.Error(), false)
		return nil, err
	}

	if err := s.Drafts.Clear(session.FormKey(models.DraftKeyRoomGroup + ":" + submitted.Name)); err != nil {
		config.Warning("failed to clear room group draft: %v", err)
	}
	s.Audit.Record(session, "room_group_save", submitted.Name, "", true)
	if err := s.Notifier.NotifyResourceChanged("rooms", session.PropertyID); err != nil {
		config.Warning("failed to broadcast room refresh: %v", err)
	}

	return &RoomPlanSaveResult{Group: saved, DeleteErrors: deleteErrors}, nil
}

// deletePhase issues one delete per removed room, concurrently. Failures
// are collected per room; siblings that already succeeded stay committed.
func (s *RoomPlanService) deletePhase(ctx context.Context, rooms []models.Room) ([]models.RoomError, map[string]bool) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []models.RoomError
		deleted  = make(map[string]bool, len(rooms))
	)

	for _, room := range rooms {
		room := room
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Upstream.DeleteRoom(ctx, room.ID)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				deleted[room.ID] = true
				return
			}

			var conflict *upstream.ConflictError
			if errors.As(err, &conflict) {
				failures = append(failures, models.RoomError{
					RoomName: room.Name,
					Message:  fmt.Sprintf("Cannot delete room '%s': %s", room.Name, conflict.Message),
				})
			} else {
				failures = append(failures, models.RoomError{
					RoomName: room.Name,
					Message:  fmt.Sprintf("Cannot delete room '%s': %v", room.Name, err),
				})
			}
		}()
	}
	wg.Wait()
	return failures, deleted
}

// updatePhase batches all surviving rooms into one bulk-update call
func (s *RoomPlanService) updatePhase(ctx context.Context, rooms []models.Room) (map[string]models.Room, error) {
	updated := make(map[string]models.Room, len(rooms))
	if len(rooms) == 0 {
		return updated, nil
	}

	canonical, err := s.Upstream.BulkUpdateRooms(ctx, rooms)
	if err != nil {
		return nil, fmt.Errorf("room update failed: %w", err)
	}
	for _, room := range canonical {
		updated[room.ID] = room
	}
	return updated, nil
}

// createPhase issues one create per new room, concurrently, keyed by
// submission index so the results keep the submitted order
func (s *RoomPlanService) createPhase(ctx context.Context, groupName string, rooms []models.Room) ([]models.Room, error) {
	created := make([]models.Room, len(rooms))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, room := range rooms {
		i, room := i, room
		room.Type = groupName
		wg.Add(1)
		go func() {
			defer wg.Done()
			canonical, err := s.Upstream.CreateRoom(ctx, &room)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("room create failed: %w", err)
				}
				return
			}
			created[i] = *canonical
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return created, nil
}

// patchRooms rebuilds the room list in submitted order from the canonical
// records: updates replaced by their bulk-update result, creates by their
// create result, and rooms whose deletion failed retained as-is
func patchRooms(original, submitted []models.Room, updated map[string]models.Room, created []models.Room, deletedIDs map[string]bool) []models.Room {
	var rooms []models.Room
	createIdx := 0
	for _, room := range submitted {
		if room.ID == "" {
			if createIdx < len(created) {
				rooms = append(rooms, created[createIdx])
				createIdx++
			}
			continue
		}
		if canonical, ok := updated[room.ID]; ok {
			rooms = append(rooms, canonical)
		} else {
			rooms = append(rooms, room)
		}
	}

	submittedIDs := make(map[string]bool, len(submitted))
	for _, room := range submitted {
		submittedIDs[room.ID] = true
	}
	for _, room := range original {
		if !submittedIDs[room.ID] && !deletedIDs[room.ID] {
			// deletion failed upstream, keep the original record visible
			rooms = append(rooms, room)
		}
	}
	return rooms
}
