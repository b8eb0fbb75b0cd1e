package dto

// CreatedResponse is returned by create operations, echoing the
// store-assigned document ID.
type CreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is returned by update and delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse returns the public URLs of an uploaded image batch, in
// the same order the files were submitted.
type UploadResponse struct {
	ImageURLs []string `json:"imageUrls"`
}
