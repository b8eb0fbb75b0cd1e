package models

// College represents a college in the campus-announcement platform.
// The ID is assigned by the document store and never stored in the
// document body.
type College struct {
	ID    string `json:"id,omitempty" firestore:"-"`
	Name  string `json:"name" firestore:"name"`
	Abbrv string `json:"abbrv" firestore:"abbrv"`
}

// CollegeSnapshot is a denormalized copy of a College embedded in users and
// announcement authors. It is taken at creation time and never re-synced;
// later changes to the source College do not propagate.
type CollegeSnapshot struct {
	ID    string `json:"id" firestore:"id"`
	Abbrv string `json:"abbrv" firestore:"abbrv"`
	Name  string `json:"name" firestore:"name"`
}

// Snapshot copies the fields of a College into an embedded snapshot.
func (c College) Snapshot() CollegeSnapshot {
	return CollegeSnapshot{
		ID:    c.ID,
		Abbrv: c.Abbrv,
		Name:  c.Name,
	}
}
