package models

// Programme represents an academic programme. Programmes exist only as
// children of exactly one College; the college relationship is carried by
// the document path, not by a stored field.
type Programme struct {
	ID          string `json:"id,omitempty" firestore:"-"`
	CollegeID   string `json:"collegeId,omitempty" firestore:"-"`
	Abbrv       string `json:"abbrv" firestore:"abbrv"`
	Name        string `json:"name" firestore:"name"`
	Years       int    `json:"years" firestore:"years"`
	Duration    string `json:"duration" firestore:"duration"`
	Description string `json:"description" firestore:"description"`
}

// ProgrammeSnapshot is a denormalized copy of a Programme embedded in users.
// It may be the zero value when a user has no programme selected.
type ProgrammeSnapshot struct {
	Abbrv string `json:"abbrv" firestore:"abbrv"`
	Name  string `json:"name" firestore:"name"`
	Years int    `json:"years" firestore:"years"`
}

// Snapshot copies the fields of a Programme into an embedded snapshot.
func (p Programme) Snapshot() ProgrammeSnapshot {
	return ProgrammeSnapshot{
		Abbrv: p.Abbrv,
		Name:  p.Name,
		Years: p.Years,
	}
}
