package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shopcatalog/internal/http-api/dto"
	"shopcatalog/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type BasketHandler struct {
	basketService service.BasketService
}

func NewBasketHandler(basketService service.BasketService) *BasketHandler {
	return &BasketHandler{basketService: basketService}
}

func (h *BasketHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	baskets := rg.Group("/baskets", requireAuth)
	{
		baskets.GET("", h.List)
		baskets.GET("/:basket_id", h.Details)
	}
}

// Details retrieves one basket with its article and owner attached
// GET /api/baskets/:basket_id
func (h *BasketHandler) Details(c *gin.Context) {
	basketID, err := strconv.ParseInt(c.Param("basket_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid basket ID"})
		return
	}

	basket, err := h.basketService.Details(c.Request.Context(), basketID)
	if err != nil {
		if errors.Is(err, service.ErrBasketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToBasketResponse(basket))
}

// List retrieves the caller's own baskets
// GET /api/baskets
func (h *BasketHandler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	baskets, err := h.basketService.ListForUser(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.FromBasketList(baskets)})
}
