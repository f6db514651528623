package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campuskit/coursecat/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	registry *prometheus.Registry,
) {
	router.GET("/", courseController.Index)
	router.GET("/catalog", courseController.Catalog)

	router.GET("/add/course", courseController.AddCourseForm)
	router.POST("/add/course", courseController.AddCourse)

	router.GET("/course/:code", courseController.CourseDetails)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
