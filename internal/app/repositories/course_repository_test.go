package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/coursecat/internal/app/models"
	"github.com/campuskit/coursecat/internal/pkg/apperrors"
)

func tempRepo(t *testing.T) *CourseRepository {
	t.Helper()
	return NewCourseRepository(filepath.Join(t.TempDir(), "course_catalog.json"))
}

func TestLoadMissingFileReturnsEmptyCatalog(t *testing.T) {
	repo := tempRepo(t)

	courses, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestAppendThenLoad(t *testing.T) {
	repo := tempRepo(t)

	course := models.Course{
		Code:          "CS101",
		Name:          "Intro",
		Schedule:      "MWF",
		Prerequisites: "None",
	}
	require.NoError(t, repo.Append(course))

	courses, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, course, courses[0])
}

func TestAppendPreservesInsertionOrder(t *testing.T) {
	repo := tempRepo(t)

	codes := []string{"CS101", "CS102", "CS101", "MA201"}
	for _, code := range codes {
		require.NoError(t, repo.Append(models.Course{Code: code, Name: "n", Schedule: "s", Prerequisites: "p"}))
	}

	courses, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, courses, len(codes))
	for i, code := range codes {
		assert.Equal(t, code, courses[i].Code)
	}
}

func TestLoadCorruptFileReturnsStorageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course_catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewCourseRepository(path)
	_, err := repo.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestFindByCodeFirstMatchWins(t *testing.T) {
	repo := tempRepo(t)

	require.NoError(t, repo.Append(models.Course{Code: "CS101", Name: "first", Schedule: "s", Prerequisites: "p"}))
	require.NoError(t, repo.Append(models.Course{Code: "CS101", Name: "second", Schedule: "s", Prerequisites: "p"}))

	course, err := repo.FindByCode("CS101")
	require.NoError(t, err)
	assert.Equal(t, "first", course.Name)
}

func TestFindByCodeNotFound(t *testing.T) {
	repo := tempRepo(t)

	_, err := repo.FindByCode("UNKNOWN")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
