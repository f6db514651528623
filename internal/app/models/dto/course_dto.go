package dto

import "github.com/campuskit/coursecat/internal/app/models"

// AddCourseRequest carries the submitted add-course form.
//
// The four required fields are declared first, in the order they are
// validated; only the first empty one is reported back to the user.
type AddCourseRequest struct {
	Code          string `form:"code" validate:"required"`
	Name          string `form:"name" validate:"required"`
	Schedule      string `form:"schedule" validate:"required"`
	Prerequisites string `form:"prerequisites" validate:"required"`
	Instructor    string `form:"instructor"`
	Semester      string `form:"semester"`
	Classroom     string `form:"classroom"`
	Grading       string `form:"grading"`
	Description   string `form:"description"`
}

// FormFields lists every key the add-course form must submit. A request
// missing any of them is malformed, independent of emptiness validation.
var FormFields = []string{
	"code", "name", "instructor", "semester", "schedule",
	"classroom", "prerequisites", "grading", "description",
}

// ToModel converts the form submission into a catalog record.
func (r AddCourseRequest) ToModel() models.Course {
	return models.Course{
		Code:          r.Code,
		Name:          r.Name,
		Instructor:    r.Instructor,
		Semester:      r.Semester,
		Schedule:      r.Schedule,
		Classroom:     r.Classroom,
		Prerequisites: r.Prerequisites,
		Grading:       r.Grading,
		Description:   r.Description,
	}
}
