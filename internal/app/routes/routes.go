package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusboard/campusboard/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	collegeController *controllers.CollegeController,
	programmeController *controllers.ProgrammeController,
	userController *controllers.UserController,
	announcementController *controllers.AnnouncementController,
	uploadController *controllers.UploadController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// College routes, with programmes nested under their college
	colleges := v1.Group("/colleges")
	{
		colleges.GET("", collegeController.GetAllColleges)
		colleges.POST("", collegeController.CreateCollege)
		colleges.GET("/:id", collegeController.InspectCollege)
		colleges.PUT("/:id", collegeController.UpdateCollege)
		colleges.DELETE("/:id", collegeController.DeleteCollege)
	}

	programmes := v1.Group("/colleges/:id/programmes")
	{
		programmes.GET("", programmeController.GetProgrammesByCollege)
		programmes.POST("", programmeController.CreateProgramme)
		programmes.PUT("/:programmeId", programmeController.UpdateProgramme)
		programmes.DELETE("/:programmeId", programmeController.DeleteProgramme)
	}

	// User routes
	users := v1.Group("/users")
	{
		users.GET("", userController.GetAllUsers)
		users.POST("", userController.CreateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	// Announcement routes
	announcements := v1.Group("/announcements")
	{
		announcements.GET("", announcementController.GetAllAnnouncements)
		announcements.POST("", announcementController.CreateAnnouncement)
		announcements.PUT("/:id", announcementController.UpdateAnnouncement)
		announcements.DELETE("/:id", announcementController.DeleteAnnouncement)
	}

	// Image uploads for announcements
	v1.POST("/upload", uploadController.UploadImages)
}
