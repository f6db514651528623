package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/coursecat/internal/app/models/dto"
	"github.com/campuskit/coursecat/internal/app/repositories"
	"github.com/campuskit/coursecat/internal/pkg/apperrors"
)

func newTestService(t *testing.T) (CourseService, *repositories.CourseRepository) {
	t.Helper()
	repo := repositories.NewCourseRepository(filepath.Join(t.TempDir(), "catalog.json"))
	return NewCourseService(repo), repo
}

func validRequest() dto.AddCourseRequest {
	return dto.AddCourseRequest{
		Code:          "CS101",
		Name:          "Intro",
		Schedule:      "MWF",
		Prerequisites: "None",
	}
}

func TestAddCourseSucceedsWithOnlyRequiredFields(t *testing.T) {
	svc, repo := newTestService(t)

	course, err := svc.AddCourse(validRequest())
	require.NoError(t, err)
	assert.Equal(t, "CS101", course.Code)

	persisted, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, course, persisted[0])
}

// Only the first empty required field is reported, in the fixed order
// code, name, schedule, prerequisites.
func TestAddCourseValidationOrder(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dto.AddCourseRequest)
		wantField string
	}{
		{"all required empty reports code", func(r *dto.AddCourseRequest) {
			r.Code, r.Name, r.Schedule, r.Prerequisites = "", "", "", ""
		}, "code"},
		{"code filled reports name", func(r *dto.AddCourseRequest) {
			r.Name, r.Schedule, r.Prerequisites = "", "", ""
		}, "name"},
		{"code and name filled reports schedule", func(r *dto.AddCourseRequest) {
			r.Schedule, r.Prerequisites = "", ""
		}, "schedule"},
		{"only prerequisites empty reports prerequisites", func(r *dto.AddCourseRequest) {
			r.Prerequisites = ""
		}, "prerequisites"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.AddCourse(req)
			require.Error(t, err)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

			// Nothing persisted on failure.
			persisted, loadErr := repo.Load()
			require.NoError(t, loadErr)
			assert.Empty(t, persisted)
		})
	}
}

func TestGetCourseByCode(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddCourse(validRequest())
	require.NoError(t, err)

	course, err := svc.GetCourseByCode("CS101")
	require.NoError(t, err)
	assert.Equal(t, "Intro", course.Name)

	_, err = svc.GetCourseByCode("UNKNOWN")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
