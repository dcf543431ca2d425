package models

// ChordTypes is the set of chord qualities the registry accepts.
var ChordTypes = []string{"MAJOR", "MINOR", "DIMINISHED", "AUGMENTED", "SUSPENDED", "SEVENTH"}

// Chord is a named chord definition composed of at least three notes.
// The note set is unordered and attached by reference to catalog notes.
type Chord struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"type:varchar(100);not null"`
	Type  string `json:"type" gorm:"type:varchar(16);not null"`
	Notes []Note `json:"notes" gorm:"many2many:chord_notes"`
}

func (Chord) TableName() string {
	return "chords"
}
