package routes

import (
	adminapi "cohesion-academy/internal/api/admin"
	articlesapi "cohesion-academy/internal/api/articles"
	authapi "cohesion-academy/internal/api/auth"
	coursesapi "cohesion-academy/internal/api/courses"
	eventsapi "cohesion-academy/internal/api/events"
	hiddenapi "cohesion-academy/internal/api/hidden"
	instructorsapi "cohesion-academy/internal/api/instructors"
	marqueeapi "cohesion-academy/internal/api/marquee"
	siteapi "cohesion-academy/internal/api/site"
	usersapi "cohesion-academy/internal/api/users"
	"cohesion-academy/internal/app/http/middleware"
	"cohesion-academy/internal/domain/roles"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public, with input sanitization and optional identity so
	// hidden-instructor filtering applies to signed-in viewers.
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware(), middleware.OptionalAuth())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.GET("/courses", coursesapi.ListCourses)
	public.GET("/courses/:id", coursesapi.GetCourse)
	public.GET("/instructors", instructorsapi.List)
	public.GET("/instructors/:id", instructorsapi.Get)
	public.GET("/events", eventsapi.ListActive)
	public.GET("/articles", articlesapi.List)
	public.GET("/articles/:id", articlesapi.Get)
	public.GET("/site/:key", siteapi.GetSetting)

	public.GET("/marquee", marqueeapi.GetBanner)
	public.POST("/marquee/dismiss", marqueeapi.Dismiss)

	auth := r.Group("/")
	auth.Use(middleware.SanitizeAndCleanInputMiddleware(), middleware.AuthMiddleware())

	auth.GET("/me", usersapi.GetCurrentUser)
	auth.PUT("/me", usersapi.UpdateProfile)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/me/favorites", coursesapi.ListFavorites)
	auth.POST("/courses/:id/favorite", coursesapi.AddFavorite)
	auth.DELETE("/courses/:id/favorite", coursesapi.RemoveFavorite)

	auth.GET("/me/hidden-instructors", hiddenapi.ListMine)
	auth.POST("/me/hidden-instructors/:id", hiddenapi.Hide)
	auth.DELETE("/me/hidden-instructors/:id", hiddenapi.Unhide)

	auth.POST("/units/:id/quiz", coursesapi.SubmitQuiz)

	// Instructor content management
	manage := r.Group("/manage")
	manage.Use(middleware.SanitizeAndCleanInputMiddleware(), middleware.AuthMiddleware(), middleware.RequireRole(roles.Instructor))

	manage.GET("/courses", coursesapi.ListOwnCourses)
	manage.POST("/courses", coursesapi.CreateCourse)
	manage.PUT("/courses/:id", coursesapi.UpdateCourse)
	manage.DELETE("/courses/:id", coursesapi.DeleteCourse)
	manage.POST("/courses/:id/publish", coursesapi.PublishCourse)
	manage.POST("/courses/:id/unpublish", coursesapi.UnpublishCourse)

	manage.POST("/courses/:id/units", coursesapi.CreateUnit)
	manage.PUT("/units/:id", coursesapi.UpdateUnit)
	manage.DELETE("/units/:id", coursesapi.DeleteUnit)
	manage.PUT("/courses/:id/units/reorder", coursesapi.ReorderUnits)

	manage.GET("/articles", articlesapi.ListOwn)
	manage.POST("/articles", articlesapi.Create)
	manage.PUT("/articles/:id", articlesapi.Update)
	manage.DELETE("/articles/:id", articlesapi.Delete)

	// Admin surface
	admin := r.Group("/admin")
	admin.Use(middleware.SanitizeAndCleanInputMiddleware(), middleware.AuthMiddleware(), middleware.RequireRole(roles.Admin))

	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/users/:id", adminapi.GetUserDetails)
	admin.PUT("/users/:id/role", adminapi.SetUserRole)
	admin.PUT("/users/:id/subscription", adminapi.SetUserSubscription)

	admin.GET("/events", adminapi.ListEvents)
	admin.POST("/events", adminapi.CreateEvent)
	admin.PUT("/events/:id", adminapi.UpdateEvent)
	admin.DELETE("/events/:id", adminapi.DeleteEvent)

	admin.PUT("/site/:key", siteapi.UpsertSetting)
	admin.GET("/hidden-instructors", hiddenapi.AdminList)
}
