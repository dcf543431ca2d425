package psql

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"chordbook/sources/psql/models"
)

// seedNotes is the fixed catalog, ids 1-12 in this order.
var seedNotes = []models.Note{
	{Name: "C", Accidental: "NATURAL"},
	{Name: "C", Accidental: "SHARP"},
	{Name: "D", Accidental: "NATURAL"},
	{Name: "D", Accidental: "SHARP"},
	{Name: "E", Accidental: "NATURAL"},
	{Name: "F", Accidental: "NATURAL"},
	{Name: "F", Accidental: "SHARP"},
	{Name: "G", Accidental: "NATURAL"},
	{Name: "G", Accidental: "SHARP"},
	{Name: "A", Accidental: "NATURAL"},
	{Name: "A", Accidental: "SHARP"},
	{Name: "B", Accidental: "NATURAL"},
}

// Seed inserts roles, the note catalog and the CSV-defined chords.
// It is a no-op when the catalog is already populated.
func Seed(ctx context.Context, db *gorm.DB, chordCSVPath string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roleCount int64
		if err := tx.Model(&models.Role{}).Count(&roleCount).Error; err != nil {
			return err
		}
		if roleCount == 0 {
			roles := []models.Role{
				{Authority: models.RoleClient},
				{Authority: models.RoleAdmin},
			}
			if err := tx.Create(&roles).Error; err != nil {
				return fmt.Errorf("seed roles: %w", err)
			}
		}

		var noteCount int64
		if err := tx.Model(&models.Note{}).Count(&noteCount).Error; err != nil {
			return err
		}
		if noteCount > 0 {
			return nil
		}

		notes := make([]models.Note, len(seedNotes))
		copy(notes, seedNotes)
		if err := tx.Create(&notes).Error; err != nil {
			return fmt.Errorf("seed notes: %w", err)
		}

		return seedChords(tx, chordCSVPath)
	})
}

// seedChords loads chord definitions from a CSV of
// name,type,noteId|noteId|noteId rows (header skipped).
func seedChords(tx *gorm.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("chord seed file %s not found: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("read chord seed: %w", err)
	}

	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if len(rec) != 3 {
			return fmt.Errorf("chord seed line %d: expected 3 columns, got %d", i+1, len(rec))
		}
		name := strings.TrimSpace(rec[0])
		chordType := strings.TrimSpace(rec[1])
		idParts := strings.Split(rec[2], "|")
		if len(idParts) < 3 {
			return fmt.Errorf("chord %q must reference at least 3 notes", name)
		}

		var notes []models.Note
		for _, p := range idParts {
			id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return fmt.Errorf("chord %q: bad note id %q", name, p)
			}
			var note models.Note
			if err := tx.First(&note, id).Error; err != nil {
				return fmt.Errorf("chord %q: note %d not seeded", name, id)
			}
			notes = append(notes, note)
		}

		chord := models.Chord{Name: name, Type: chordType, Notes: notes}
		if err := tx.Create(&chord).Error; err != nil {
			return fmt.Errorf("seed chord %q: %w", name, err)
		}
	}
	return nil
}
