package dto

// AnnouncementRequest carries the announcement fields for create and update.
// The author snapshot is assembled from the flat author/college fields the
// dashboard submits; Roles and Visibility are comma-separated lists.
type AnnouncementRequest struct {
	AuthorID     string   `json:"authorId"`
	AuthorName   string   `json:"authorName"`
	CollegeID    string   `json:"collegeId"`
	CollegeAbbrv string   `json:"collegeAbbrv"`
	CollegeName  string   `json:"collegeName"`
	Roles        string   `json:"roles"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	Department   string   `json:"department"`
	Visibility   string   `json:"visibility"`
	ImageURLs    []string `json:"imageUrls"`
}
