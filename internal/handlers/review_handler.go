package handlers

import (
	"net/http"

	"staynest/internal/auth"
	"staynest/internal/middleware"
	"staynest/internal/services"
	"staynest/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
	tokens        *auth.TokenManager
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService, tokens *auth.TokenManager) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
		tokens:        tokens,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("/property/:propertyId", h.GetPropertyReviews)
		reviews.POST("", middleware.AuthMiddleware(h.tokens), h.CreateReview)
	}
}

func (h *ReviewHandler) GetPropertyReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetReviewsByProperty(c.Request.Context(), c.Param("propertyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	guestID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), guestID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"review":  review,
	})
}
