package models

// NoteNames is the fixed set of pitch-class letter names.
var NoteNames = []string{"C", "D", "E", "F", "G", "A", "B"}

// Accidentals accepted for a note.
var Accidentals = []string{"NATURAL", "SHARP", "FLAT"}

// Note is a pitch class in the fixed catalog. Seeded once at startup;
// duplicates of (name, accidental) are permitted, matching the schema
// this catalog was migrated from.
type Note struct {
	ID         int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string  `json:"name" gorm:"type:varchar(30);not null"`
	Accidental string  `json:"accidental" gorm:"type:varchar(30)"`
	Chords     []Chord `json:"-" gorm:"many2many:chord_notes"`
}

func (Note) TableName() string {
	return "notes"
}
