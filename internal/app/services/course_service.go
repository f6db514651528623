package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/campuskit/coursecat/internal/app/models"
	"github.com/campuskit/coursecat/internal/app/models/dto"
	"github.com/campuskit/coursecat/internal/app/repositories"
	"github.com/campuskit/coursecat/internal/pkg/apperrors"
)

// CourseService exposes catalog operations to the handlers
type CourseService interface {
	ListCourses() ([]models.Course, error)
	GetCourseByCode(code string) (models.Course, error)
	AddCourse(req dto.AddCourseRequest) (models.Course, error)
}

type courseService struct {
	repo     *repositories.CourseRepository
	validate *validator.Validate
}

// NewCourseService creates a CourseService backed by the given repository.
func NewCourseService(repo *repositories.CourseRepository) CourseService {
	validate := validator.New()
	// Report field names as they appear on the form, not as Go identifiers.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &courseService{repo: repo, validate: validate}
}

// ListCourses returns the full catalog in insertion order.
func (s *courseService) ListCourses() ([]models.Course, error) {
	return s.repo.Load()
}

// GetCourseByCode returns the first course matching code.
func (s *courseService) GetCourseByCode(code string) (models.Course, error) {
	return s.repo.FindByCode(code)
}

// AddCourse validates the submitted form and appends the course to the
// catalog. Required fields are checked in declaration order and only the
// first empty one is reported; nothing is persisted on failure.
func (s *courseService) AddCourse(req dto.AddCourseRequest) (models.Course, error) {
	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return models.Course{}, apperrors.NewValidationError(fieldErrs[0].Field())
		}
		return models.Course{}, err
	}

	course := req.ToModel()
	if err := s.repo.Append(course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}
