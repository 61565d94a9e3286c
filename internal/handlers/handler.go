package handlers

import (
	"checklist_api/internal/logger"
	"checklist_api/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware, cors.Default())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")

	// Public endpoints
	api.POST("/register", h.register)
	api.POST("/login", h.login)

	// Protected endpoints
	h.registerChecklistRoutes(api)

	return router
}

func (h *Handler) registerChecklistRoutes(api *gin.RouterGroup) {
	checklist := api.Group("/checklist", h.userIDMiddleware)
	{
		checklist.POST("", h.createChecklist)
		checklist.GET("", h.getChecklists)
		checklist.GET("/:id", h.getChecklistDetail)
		checklist.DELETE("/:id", h.deleteChecklist)

		checklist.POST("/:id/items", h.createTodoItem)
		checklist.GET("/:id/items", h.getTodoItems)
		checklist.PUT("/:id/items/:itemId", h.updateTodoItem)
		checklist.PUT("/:id/items/:itemId/status", h.updateTodoItemStatus)
		checklist.DELETE("/:id/items/:itemId", h.deleteTodoItem)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
