package dto

// CreateUserRequest carries the fields for the user + identity creation
// workflow. RegNo is required because the login email is derived from it;
// Roles is a comma-separated list. Dates arrive as date or RFC3339 strings.
type CreateUserRequest struct {
	FullName      string `json:"fullName"`
	RegNo         string `json:"regNo" binding:"required"`
	CollegeID     string `json:"collegeId" binding:"required"`
	ProgrammeID   string `json:"programmeId"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Roles         string `json:"roles"`
	ProfilePicURL string `json:"profilePicUrl"`
}

// CreatedUserResponse confirms the atomic creation of the user document and
// its paired auth identity (both share the returned ID).
type CreatedUserResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
