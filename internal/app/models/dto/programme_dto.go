package dto

// ProgrammeRequest carries the programme fields for create and update.
type ProgrammeRequest struct {
	Abbrv       string `json:"abbrv"`
	Name        string `json:"name"`
	Years       int    `json:"years"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}
