package handlers

import (
	"net/http"

	"staynest/internal/auth"
	"staynest/internal/middleware"
	"staynest/internal/models"
	"staynest/internal/services"
	"staynest/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	*BaseHandler
	propertyService services.PropertyService
	reviewService   services.ReviewService
	tokens          *auth.TokenManager
}

func NewPropertyHandler(base *BaseHandler, propertyService services.PropertyService, reviewService services.ReviewService, tokens *auth.TokenManager) *PropertyHandler {
	return &PropertyHandler{
		BaseHandler:     base,
		propertyService: propertyService,
		reviewService:   reviewService,
		tokens:          tokens,
	}
}

func (h *PropertyHandler) RegisterRoutes(r *gin.RouterGroup) {
	properties := r.Group("/properties")
	{
		properties.GET("", h.GetProperties)
		properties.GET("/:id", h.GetProperty)
		properties.GET("/:id/reviews", h.GetPropertyReviews)

		authed := properties.Group("")
		authed.Use(middleware.AuthMiddleware(h.tokens))
		{
			authed.POST("", middleware.RequireRoles(models.UserRoleHost, models.UserRoleAdmin), h.CreateProperty)
			authed.PUT("/:id", h.UpdateProperty)
			authed.DELETE("/:id", h.DeleteProperty)
		}
	}

	host := r.Group("/hosts")
	{
		host.GET("/:id/properties", h.GetHostProperties)
	}
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	hostID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePropertyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), hostID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Property created successfully",
		"property": property,
	})
}

func (h *PropertyHandler) GetProperties(c *gin.Context) {
	var filter dto.PropertyFilterRequest
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}

	properties, err := h.propertyService.GetAllProperties(c.Request.Context(), &filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.propertyService.GetPropertyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

func (h *PropertyHandler) GetPropertyReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetReviewsByProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *PropertyHandler) GetHostProperties(c *gin.Context) {
	properties, err := h.propertyService.GetPropertiesByHost(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	property, err := h.propertyService.UpdateProperty(c.Request.Context(), c.Param("id"), actorID, middleware.GetRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property updated successfully",
		"property": property,
	})
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	err := h.propertyService.DeleteProperty(c.Request.Context(), c.Param("id"), actorID, middleware.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
