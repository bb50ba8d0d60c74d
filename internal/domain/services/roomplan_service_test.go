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

// recordingDrafts tracks cleared keys
type recordingDrafts struct {
	mu      sync.Mutex
	cleared []string
}

func (d *recordingDrafts) Save(string, map[string]interface{})       {}
func (d *recordingDrafts) Flush(string) error                        { return nil }
func (d *recordingDrafts) Load(string) (map[string]interface{}, error) { return nil, ErrDraftNotFound }
func (d *recordingDrafts) Shutdown()                                 {}

func (d *recordingDrafts) Clear(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cleared = append(d.cleared, key)
	return nil
}

func (d *recordingDrafts) clearedKeys() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.cleared...)
}

type roomUpstream struct {
	conflictIDs map[string]string // room id -> conflict reason
	failCreates bool

	deleteCalls int32
	bulkCalls   int32
	createCalls int32
	saveCalls   int32
}

func (u *roomUpstream) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/rooms/"):
			atomic.AddInt32(&u.deleteCalls, 1)
			id := strings.TrimPrefix(r.URL.Path, "/api/rooms/")
			if reason, ok := u.conflictIDs[id]; ok {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"error": reason})
				return
			}
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPut && r.URL.Path == "/api/rooms/bulk-update":
			atomic.AddInt32(&u.bulkCalls, 1)
			var rooms []models.Room
			json.NewDecoder(r.Body).Decode(&rooms)
			json.NewEncoder(w).Encode(rooms)
		case r.Method == http.MethodPost && r.URL.Path == "/api/rooms":
			atomic.AddInt32(&u.createCalls, 1)
			if u.failCreates {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			var room models.Room
			json.NewDecoder(r.Body).Decode(&room)
			room.ID = "new-" + room.Name
			json.NewEncoder(w).Encode(room)
		case r.Method == http.MethodPost && r.URL.Path == "/api/room-types/by-name":
			atomic.AddInt32(&u.saveCalls, 1)
			var group models.RoomGroup
			json.NewDecoder(r.Body).Decode(&group)
			json.NewEncoder(w).Encode(group)
		default:
			http.NotFound(w, r)
		}
	})
}

func newRoomPlanService(t *testing.T, fake *roomUpstream, drafts *recordingDrafts) InterfaceRoomPlanService {
	t.Helper()
	client := newTestUpstream(t, fake.handler())
	return NewRoomPlanService(client, drafts, NoopRefreshNotifier{}, NoopAuditService{})
}

func deluxeGroup(rooms ...models.Room) *models.RoomGroup {
	return &models.RoomGroup{Name: "Deluxe", Abbreviation: "DLX", BasePrice: 120, Rooms: rooms}
}

func TestSaveGroupIssuesDiffedCalls(t *testing.T) {
	fake := &roomUpstream{}
	drafts := &recordingDrafts{}
	svc := newRoomPlanService(t, fake, drafts)

	original := deluxeGroup(
		models.Room{ID: "r1", Name: "101"},
		models.Room{ID: "r2", Name: "102"},
	)
	submitted := deluxeGroup(
		models.Room{ID: "r1", Name: "101 Renamed"},
		models.Room{Name: "103"}, // no id yet: to be created
	)

	result, err := svc.SaveGroup(context.Background(), testSession(), original, submitted)
	require.NoError(t, err)
	require.Empty(t, result.DeleteErrors)

	require.Equal(t, int32(1), atomic.LoadInt32(&fake.deleteCalls))
	require.Equal(t, int32(1), atomic.LoadInt32(&fake.bulkCalls))
	require.Equal(t, int32(1), atomic.LoadInt32(&fake.createCalls))
	require.Equal(t, int32(1), atomic.LoadInt32(&fake.saveCalls))

	require.Len(t, result.Group.Rooms, 2)
	require.Equal(t, "101 Renamed", result.Group.Rooms[0].Name)
	require.Equal(t, "new-103", result.Group.Rooms[1].ID, "created room carries the canonical id")
	require.Equal(t, "Deluxe", result.Group.Rooms[1].Type)

	cleared := drafts.clearedKeys()
	require.Len(t, cleared, 1)
	require.Contains(t, cleared[0], models.DraftKeyRoomGroup)
}

func TestDeleteConflictIsReportedWithoutAbortingSave(t *testing.T) {
	fake := &roomUpstream{conflictIDs: map[string]string{"r2": "active reservations exist"}}
	svc := newRoomPlanService(t, fake, &recordingDrafts{})

	original := deluxeGroup(
		models.Room{ID: "r1", Name: "101"},
		models.Room{ID: "r2", Name: "102"},
		models.Room{ID: "r3", Name: "103"},
	)
	submitted := deluxeGroup(models.Room{ID: "r1", Name: "101"})

	result, err := svc.SaveGroup(context.Background(), testSession(), original, submitted)
	require.NoError(t, err, "a blocked deletion never fails the save")

	require.Len(t, result.DeleteErrors, 1)
	require.Equal(t, "102", result.DeleteErrors[0].RoomName)
	require.Contains(t, result.DeleteErrors[0].Message, "active reservations exist")

	// the undeletable room stays visible, the deleted sibling is gone
	names := make([]string, 0, len(result.Group.Rooms))
	for _, room := range result.Group.Rooms {
		names = append(names, room.Name)
	}
	require.ElementsMatch(t, []string{"101", "102"}, names)
}

func TestCreateFailureAbortsSave(t *testing.T) {
	fake := &roomUpstream{failCreates: true}
	drafts := &recordingDrafts{}
	svc := newRoomPlanService(t, fake, drafts)

	original := deluxeGroup(models.Room{ID: "r1", Name: "101"})
	submitted := deluxeGroup(
		models.Room{ID: "r1", Name: "101"},
		models.Room{Name: "102"},
	)

	_, err := svc.SaveGroup(context.Background(), testSession(), original, submitted)
	require.Error(t, err)
	require.Zero(t, atomic.LoadInt32(&fake.saveCalls), "group-level save never runs after a failed phase")
	require.Empty(t, drafts.clearedKeys(), "the draft survives a failed save")
}

func TestReorderMovesRowKeepingSiblingOrder(t *testing.T) {
	svc := newRoomPlanService(t, &roomUpstream{}, &recordingDrafts{})

	groups := []models.RoomGroup{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	moved, err := svc.Reorder(groups, 3, 1)
	require.NoError(t, err)

	names := make([]string, len(moved))
	for i, group := range moved {
		names[i] = group.Name
	}
	require.Equal(t, []string{"A", "D", "B", "C"}, names)
	require.Equal(t, "B", groups[1].Name, "input slice is untouched")
}

func TestReorderRejectsOutOfRangePositions(t *testing.T) {
	svc := newRoomPlanService(t, &roomUpstream{}, &recordingDrafts{})

	groups := []models.RoomGroup{{Name: "A"}, {Name: "B"}}
	_, err := svc.Reorder(groups, 0, 5)
	require.Error(t, err)
	_, err = svc.Reorder(groups, -1, 0)
	require.Error(t, err)
}
