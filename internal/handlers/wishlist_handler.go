package handlers

import (
	"net/http"

	"staynest/internal/auth"
	"staynest/internal/middleware"
	"staynest/internal/services"

	"github.com/gin-gonic/gin"
)

// WishlistHandler exposes the caller's saved-property set.
type WishlistHandler struct {
	*BaseHandler
	userService services.UserService
	tokens      *auth.TokenManager
}

func NewWishlistHandler(base *BaseHandler, userService services.UserService, tokens *auth.TokenManager) *WishlistHandler {
	return &WishlistHandler{
		BaseHandler: base,
		userService: userService,
		tokens:      tokens,
	}
}

func (h *WishlistHandler) RegisterRoutes(r *gin.RouterGroup) {
	wishlist := r.Group("/wishlist")
	wishlist.Use(middleware.AuthMiddleware(h.tokens))
	{
		wishlist.GET("", h.GetWishlist)
		wishlist.POST("/:propertyId", h.AddToWishlist)
		wishlist.DELETE("/:propertyId", h.RemoveFromWishlist)
	}
}

func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	wishlist, err := h.userService.GetWishlist(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": wishlist})
}

func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	wishlist, err := h.userService.AddToWishlist(c.Request.Context(), userID, c.Param("propertyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property added to wishlist",
		"wishlist": wishlist,
	})
}

func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	wishlist, err := h.userService.RemoveFromWishlist(c.Request.Context(), userID, c.Param("propertyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property removed from wishlist",
		"wishlist": wishlist,
	})
}
