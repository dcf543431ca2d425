package controllers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chordbook/sources/psql/dao"
	"chordbook/types"
)

func chordCtrl(t *testing.T) (*ChordController, context.Context) {
	t.Helper()
	db := setupTestDB(t)
	return NewChordController(dao.NewChordDAO(db), dao.NewNoteDAO(db)), context.Background()
}

func TestChordInsert(t *testing.T) {
	ctrl, ctx := chordCtrl(t)

	chord, err := ctrl.Insert(ctx, types.ChordCreateRequest{
		Name: "A Minor Again",
		Type: "MINOR",
		// C, E, A naturals
		Notes: []types.NoteRef{{ID: 1}, {ID: 5}, {ID: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, "A Minor Again", chord.Name)
	assert.Equal(t, "MINOR", chord.Type)
	require.Len(t, chord.Notes, 3)

	names := make(map[string]bool)
	for _, n := range chord.Notes {
		names[n.Name] = true
	}
	assert.True(t, names["C"] && names["E"] && names["A"])
}

func TestChordInsertUnknownNote(t *testing.T) {
	ctrl, ctx := chordCtrl(t)

	_, err := ctrl.Insert(ctx, types.ChordCreateRequest{
		Name:  "Ghost",
		Type:  "MAJOR",
		Notes: []types.NoteRef{{ID: 1}, {ID: 5}, {ID: 99}},
	})
	apiErr := requireAPIError(t, err)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Resource not found", apiErr.Label)
	assert.Equal(t, "Note not found: 99", apiErr.Message)
}

func TestChordInsertValidation(t *testing.T) {
	ctrl, ctx := chordCtrl(t)

	_, err := ctrl.Insert(ctx, types.ChordCreateRequest{
		Name:  "Too Thin",
		Type:  "MAJOR",
		Notes: []types.NoteRef{{ID: 1}, {ID: 5}},
	})
	apiErr := requireAPIError(t, err)
	assert.Equal(t, 422, apiErr.StatusCode)
	require.Len(t, apiErr.Fields, 1)
	assert.Equal(t, "notes", apiErr.Fields[0].FieldName)
	assert.Equal(t, "A chord must have at least three note", apiErr.Fields[0].Message)

	_, err = ctrl.Insert(ctx, types.ChordCreateRequest{
		Type:  "MAJOR",
		Notes: []types.NoteRef{{ID: 1}, {ID: 5}, {ID: 8}},
	})
	apiErr = requireAPIError(t, err)
	assert.Equal(t, "Chord name cannot be null", apiErr.Fields[0].Message)
}

func TestChordSearchByNotes(t *testing.T) {
	ctrl, ctx := chordCtrl(t)

	// C major is seeded as C, E, G naturals.
	result, err := ctrl.Search(ctx, "", []string{"C", "E", "G"})
	require.NoError(t, err)

	// Every chord containing C, E and G matches, including the
	// four-note C Major Seventh; full note lists come back with each.
	names := make([]string, 0, len(result))
	for _, c := range result {
		assert.NotEmpty(t, c.Notes)
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"C Major", "C Major Seventh"}, names)
}

func TestChordSearchByNotesAndName(t *testing.T) {
	ctrl, ctx := chordCtrl(t)

	// With notes present the name is a substring filter on top of the
	// note match.
	result, err := ctrl.Search(ctx, "seventh", []string{"C", "E", "G"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "C Major Seventh", result[0].Name)
}

func TestChordSearchPartialNoteSet(t *testing.T) {
	ctrl, ctx := chordCtrl(t)

	result, err := ctrl.Search(ctx, "", []string{"C", "E"})
	require.NoError(t, err)

	names := make([]string, 0, len(result))
	for _, c := range result {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"C Major", "A Minor", "C Major Seventh"}, names)
}

func TestChordSearchByNamePrefix(t *testing.T) {
	ctrl, ctx := chordCtrl(t)

	result, err := ctrl.Search(ctx, "c ma", nil)
	require.NoError(t, err)
	require.NotEmpty(t, result)
	for _, c := range result {
		assert.Contains(t, []string{"C Major", "C Major Seventh"}, c.Name)
	}
}

func TestChordSearchNoMatchesReturnsEmptyList(t *testing.T) {
	ctrl, ctx := chordCtrl(t)

	result, err := ctrl.Search(ctx, "NonExistingChordName", nil)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestChordSearchNoFilters(t *testing.T) {
	ctrl, ctx := chordCtrl(t)

	result, err := ctrl.Search(ctx, "", nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestChordFindAllPaged(t *testing.T) {
	ctrl, ctx := chordCtrl(t)

	page, err := ctrl.FindAllPaged(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Content, 10)

	second, err := ctrl.FindAllPaged(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, second.Content, 5)
	assert.NotEqual(t, page.Content[0].ID, second.Content[0].ID)
}
