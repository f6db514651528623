package models

// Course represents one catalog entry.
//
// Code is the lookup key but is not enforced unique; when duplicates exist the
// first matching record wins.
type Course struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Instructor    string `json:"instructor"`
	Semester      string `json:"semester"`
	Schedule      string `json:"schedule"`
	Classroom     string `json:"classroom"`
	Prerequisites string `json:"prerequisites"`
	Grading       string `json:"grading"`
	Description   string `json:"description"`
}
