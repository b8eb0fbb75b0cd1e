package dto

import "github.com/campusboard/campusboard/internal/app/models"

// CollegeRequest carries the college fields for create and update.
// Name and abbreviation are free text; emptiness is a convention the
// dashboard enforces, not the server.
type CollegeRequest struct {
	Name  string `json:"name"`
	Abbrv string `json:"abbrv"`
}

// CollegeInspection is the diagnostic payload for a single college,
// including its programmes regardless of whether the college document
// itself still exists.
type CollegeInspection struct {
	CollegeID       string             `json:"collegeId"`
	CollegeExists   bool               `json:"collegeExists"`
	CollegeData     *models.College    `json:"collegeData"`
	ProgrammesCount int                `json:"programmesCount"`
	Programmes      []models.Programme `json:"programmes"`
}
