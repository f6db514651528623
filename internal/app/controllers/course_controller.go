package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/campuskit/coursecat/internal/app/models/dto"
	"github.com/campuskit/coursecat/internal/app/services"
	"github.com/campuskit/coursecat/internal/metrics"
	"github.com/campuskit/coursecat/internal/pkg/apperrors"
	"github.com/campuskit/coursecat/internal/pkg/flash"
	"github.com/campuskit/coursecat/internal/pkg/logger"
)

// CourseController handles the catalog pages and the add-course form.
type CourseController struct {
	courses services.CourseService
	metrics *metrics.RequestMetrics
	tracer  trace.Tracer
	flashes *flash.Store
}

// NewCourseController creates a new CourseController
func NewCourseController(
	courses services.CourseService,
	requestMetrics *metrics.RequestMetrics,
	tracer trace.Tracer,
	flashes *flash.Store,
) *CourseController {
	return &CourseController{
		courses: courses,
		metrics: requestMetrics,
		tracer:  tracer,
		flashes: flashes,
	}
}

// Index renders the landing page.
func (cc *CourseController) Index(c *gin.Context) {
	_, span := cc.tracer.Start(c.Request.Context(), "Rendering index page",
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	cc.annotateRequest(c, span)
	logger.PageRendered("index")

	cc.render(c, "index.html", gin.H{})
}

// Catalog renders the full course listing.
func (cc *CourseController) Catalog(c *gin.Context) {
	courses, err := cc.courses.ListCourses()

	_, span := cc.tracer.Start(c.Request.Context(), "Rendering course catalog",
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	cc.annotateRequest(c, span)
	if err != nil {
		cc.handleStorageError(c, span, err)
		return
	}
	logger.PageRendered("course_catalog")

	cc.render(c, "course_catalog.html", gin.H{"courses": courses})
}

// AddCourseForm renders the empty add-course form.
func (cc *CourseController) AddCourseForm(c *gin.Context) {
	cc.render(c, "add_course.html", gin.H{})
}

// AddCourse handles the add-course form submission. Validation failures never
// surface as HTTP errors; the user is redirected back to the catalog with a
// one-time notice either way.
func (cc *CourseController) AddCourse(c *gin.Context) {
	_, span := cc.tracer.Start(c.Request.Context(), "Add Course",
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	cc.annotateRequest(c, span)
	logger.PageRendered("add_course")

	// Every form key must be present in the submission, even the optional
	// ones; a partial form is a malformed request, not a validation failure.
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "malformed form submission")
		return
	}
	for _, field := range dto.FormFields {
		if _, ok := c.Request.PostForm[field]; !ok {
			logger.ErrorMessage(fmt.Sprintf("Form submission missing field: %s.", field))
			span.SetAttributes(attribute.Bool("error", true))
			c.String(http.StatusBadRequest, "missing form field: %s", field)
			return
		}
	}

	var req dto.AddCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "malformed form submission")
		return
	}

	span.SetAttributes(
		attribute.String("course.code", req.Code),
		attribute.String("course.name", req.Name),
		attribute.String("course.instructor", req.Instructor),
		attribute.String("course.semester", req.Semester),
		attribute.String("course.schedule", req.Schedule),
		attribute.String("course.classroom", req.Classroom),
		attribute.String("course.prerequisites", req.Prerequisites),
		attribute.String("course.grading", req.Grading),
		attribute.String("course.description", req.Description),
	)

	course, err := cc.courses.AddCourse(req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.As(err, &validationErr):
			logger.MissingField(validationErr.Field)
			cc.flashes.Set(c, "error",
				fmt.Sprintf("course addition failed as %s field was empty", validationErr.Field))
			errorCount := cc.metrics.IncrementErrors()
			span.SetAttributes(
				attribute.Bool("error", true),
				attribute.String("missing_field", validationErr.Field),
				attribute.Int64("error_count", errorCount),
			)
			c.Redirect(http.StatusFound, "/catalog")
		default:
			cc.handleStorageError(c, span, err)
		}
		return
	}

	logger.CourseAdded(course.Name, course.Code)
	cc.flashes.Set(c, "success",
		fmt.Sprintf("Course '%s' added successfully!", course.Name))
	c.Redirect(http.StatusFound, "/catalog")
}

// CourseDetails renders the detail page for one course code. An unknown code
// redirects back to the catalog with a notice rather than a 404.
func (cc *CourseController) CourseDetails(c *gin.Context) {
	_, span := cc.tracer.Start(c.Request.Context(), "Browsing Course Details",
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	cc.annotateRequest(c, span)
	logger.PageRendered("course_details")

	code := c.Param("code")
	span.SetAttributes(attribute.String("course_code", code))

	course, err := cc.courses.GetCourseByCode(code)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCourseNotFound):
			message := fmt.Sprintf("No course found with code '%s'.", code)
			cc.flashes.Set(c, "error", message)
			logger.ErrorMessage(message)
			span.SetAttributes(
				attribute.Bool("error", true),
				attribute.String("error_message", "Course not found"),
			)
			c.Redirect(http.StatusFound, "/catalog")
		default:
			cc.handleStorageError(c, span, err)
		}
		return
	}

	span.SetAttributes(attribute.String("course.name", course.Name))
	cc.render(c, "course_details.html", gin.H{"course": course})
}

// annotateRequest bumps the request counter and attaches the shared
// request-identifying attributes to the span.
func (cc *CourseController) annotateRequest(c *gin.Context, span trace.Span) {
	currentRequests := cc.metrics.IncrementRequests()
	span.SetAttributes(
		attribute.Int64("requests_count", currentRequests),
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.url", requestURL(c)),
		attribute.String("client.address", c.ClientIP()),
	)
}

// render draws the named template, surfacing any pending flash notice exactly
// once.
func (cc *CourseController) render(c *gin.Context, template string, data gin.H) {
	if notice, ok := cc.flashes.Take(c); ok {
		data["notice"] = notice
	}
	c.HTML(http.StatusOK, template, data)
}

// handleStorageError reports an unreadable or corrupt catalog file as a
// server failure.
func (cc *CourseController) handleStorageError(c *gin.Context, span trace.Span, err error) {
	logger.ErrorMessage(err.Error())
	span.RecordError(err)
	span.SetAttributes(attribute.Bool("error", true))
	c.String(http.StatusInternalServerError, "internal server error")
}

func requestURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, c.Request.URL.RequestURI())
}
