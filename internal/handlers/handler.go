package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"techblog/internal/logger"
	"techblog/internal/markdown"
	"techblog/internal/service"
)

// Handler wires the HTTP layer to services, markdown rendering and logging.
type Handler struct {
	services *service.Service
	md       *markdown.Renderer
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, md *markdown.Renderer, log *logger.Logger) *Handler {
	return &Handler{services: services, md: md, log: log}
}

// RouterConfig carries the template location and the flash cookie secret.
type RouterConfig struct {
	TemplateGlob string
	FlashSecret  []byte
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestLogger())
	router.Use(sessions.Sessions(flashCookieName, cookie.NewStore(cfg.FlashSecret)))
	router.Use(h.identityMiddleware)

	router.LoadHTMLGlob(cfg.TemplateGlob)
	router.NoRoute(h.notFound)

	// Public pages
	router.GET("/", h.home)
	router.GET("/about", h.about)
	router.GET("/technical-blogs", h.technicalBlogs)
	router.GET("/profile/:username", h.profile)
	router.GET("/blog/:id", h.viewBlog)
	router.POST("/blog/:id", h.postComment)

	// Auth endpoints
	router.GET("/login", h.loginPage)
	router.POST("/login", h.login)
	router.GET("/register", h.registerPage)
	router.POST("/register", h.register)
	router.GET("/logout", h.logout)

	// Login-gated pages
	router.GET("/dashboard", h.requireAuth(msgLoginDashboard), h.dashboard)
	router.GET("/create-blog", h.requireAuth(msgLoginToCreate), h.createBlogPage)
	router.POST("/create-blog", h.requireAuth(msgLoginToCreate), h.createBlog)
	router.GET("/edit-blog/:id", h.requireAuth(msgLoginToManage), h.editBlogPage)
	router.POST("/edit-blog/:id", h.requireAuth(msgLoginToManage), h.editBlog)
	router.GET("/delete-blog/:id", h.requireAuth(msgLoginToManage), h.deleteBlog)

	return router
}
