package models

import "time"

// User represents a platform member created through the admin dashboard.
// A user's ID always equals the ID of its paired auth identity; the two are
// created and deleted together.
type User struct {
	ID            string            `json:"id,omitempty" firestore:"-"`
	FullName      string            `json:"fullName" firestore:"fullName"`
	RegNo         string            `json:"regNo" firestore:"regNo"`
	College       CollegeSnapshot   `json:"college" firestore:"college"`
	Programme     ProgrammeSnapshot `json:"programme" firestore:"programme"`
	StartDate     time.Time         `json:"startDate" firestore:"startDate"`
	EndDate       time.Time         `json:"endDate" firestore:"endDate"`
	Roles         []string          `json:"roles" firestore:"roles"`
	ProfilePicURL string            `json:"profilePicUrl" firestore:"profilePicUrl"`
}
