package repositories

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/campuskit/coursecat/internal/app/models"
	"github.com/campuskit/coursecat/internal/pkg/apperrors"
)

// CourseRepository persists the catalog as a single JSON array on disk.
//
// The file is the whole store: every Load reads it fully and every Append
// rewrites it fully. An absent file is a valid empty catalog. Appends are
// serialized by a repository mutex so concurrent in-process appends cannot
// drop each other's writes; writers in other processes are out of scope.
type CourseRepository struct {
	path string
	mu   sync.Mutex
}

// NewCourseRepository creates a repository backed by the given file path.
func NewCourseRepository(path string) *CourseRepository {
	return &CourseRepository{path: path}
}

// Load returns the full catalog in insertion order. A missing file yields an
// empty catalog and no error; an unreadable or corrupt file yields ErrStorage.
func (r *CourseRepository) Load() ([]models.Course, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Course{}, nil
		}
		return nil, apperrors.NewStorageError("read catalog file", err)
	}

	var courses []models.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, apperrors.NewStorageError("decode catalog file", err)
	}
	return courses, nil
}

// Append adds course as the last catalog record and rewrites the file.
func (r *CourseRepository) Append(course models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses, err := r.Load()
	if err != nil {
		return err
	}
	courses = append(courses, course)

	data, err := json.MarshalIndent(courses, "", "    ")
	if err != nil {
		return apperrors.NewStorageError("encode catalog", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return apperrors.NewStorageError("write catalog file", err)
	}
	return nil
}

// FindByCode returns the first course with the given code, or ErrCourseNotFound.
func (r *CourseRepository) FindByCode(code string) (models.Course, error) {
	courses, err := r.Load()
	if err != nil {
		return models.Course{}, err
	}
	for _, course := range courses {
		if course.Code == code {
			return course, nil
		}
	}
	return models.Course{}, apperrors.ErrCourseNotFound
}
