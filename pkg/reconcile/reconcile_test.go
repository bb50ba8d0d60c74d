package reconcile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type room struct {
	ID   string
	Name string
}

func roomKey(r room) string { return r.ID }

func TestDiffClassifiesByKeyMembership(t *testing.T) {
	original := []room{{ID: "a", Name: "101"}, {ID: "b", Name: "102"}, {ID: "c", Name: "103"}}
	submitted := []room{{ID: "b", Name: "102 renamed"}, {ID: "c", Name: "103"}, {ID: "", Name: "104"}}

	result := Diff(original, submitted, roomKey)

	require.Len(t, result.ToDelete, 1)
	require.Equal(t, "a", result.ToDelete[0].ID)

	require.Len(t, result.ToUpdate, 2)
	require.Equal(t, "102 renamed", result.ToUpdate[0].Name)
	require.Equal(t, "103", result.ToUpdate[1].Name)

	require.Len(t, result.ToCreate, 1)
	require.Equal(t, "104", result.ToCreate[0].Name)
}

func TestDiffEmptyOriginal(t *testing.T) {
	submitted := []room{{Name: "201"}, {Name: "202"}}
	result := Diff(nil, submitted, roomKey)

	require.Len(t, result.ToCreate, 2)
	require.Empty(t, result.ToUpdate)
	require.Empty(t, result.ToDelete)
}

func TestDiffEmptySubmission(t *testing.T) {
	original := []room{{ID: "a"}, {ID: "b"}}
	result := Diff(original, nil, roomKey)

	require.Empty(t, result.ToCreate)
	require.Empty(t, result.ToUpdate)
	require.Len(t, result.ToDelete, 2)
}

func TestMovePreservesOrderOfOthers(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	require.Equal(t, []string{"b", "c", "a", "d"}, Move(items, 0, 2))
	require.Equal(t, []string{"d", "a", "b", "c"}, Move(items, 3, 0))
	require.Equal(t, []string{"a", "b", "c", "d"}, items, "input must not be mutated")
}

func TestMoveOutOfRangeIsNoop(t *testing.T) {
	items := []string{"a", "b"}
	require.Equal(t, items, Move(items, -1, 1))
	require.Equal(t, items, Move(items, 0, 5))
	require.Equal(t, items, Move(items, 1, 1))
}
