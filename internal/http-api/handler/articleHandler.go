package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shopcatalog/internal/http-api/dto"
	"shopcatalog/internal/http-api/repository"
	"shopcatalog/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService service.ArticleService
	scoreService   service.ScoreService
}

func NewArticleHandler(articleService service.ArticleService, scoreService service.ScoreService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		scoreService:   scoreService,
	}
}

// RegisterRoutes registers article-related routes. The details read works
// anonymously, the review submission requires an authenticated caller.
func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup, optionalAuth, requireAuth gin.HandlerFunc) {
	articles := rg.Group("/articles")
	{
		articles.GET("", h.List)
		articles.GET("/:article_id", optionalAuth, h.Details)
		articles.POST("/:article_id/review", requireAuth, h.SubmitReview)
	}
}

// List retrieves the catalog, ordered by category name then price
// GET /api/articles?categoryid=2&brandid=3
func (h *ArticleHandler) List(c *gin.Context) {
	filter, err := bindArticleFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	articles, err := h.articleService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.FromArticleList(articles)})
}

// Details retrieves one article with its review state and paging neighbours
// GET /api/articles/:article_id?categoryid=2&brandid=3
func (h *ArticleHandler) Details(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	filter, err := bindArticleFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// set by OptionalAuth when a valid token is present
	userID := c.GetString("userID")

	details, err := h.articleService.Details(c.Request.Context(), articleID, filter, userID)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ArticleDetailsResponse{
		Article:       dto.FromModelToArticleResponse(*details.Article),
		ScoreCount:    details.ScoreCount,
		PersonalScore: dto.FromModelToPersonalScore(details.Personal),
		Reviews:       dto.FromReviewList(details.Reviews),
		PreviousID:    details.PreviousID,
		NextID:        details.NextID,
	})
}

// SubmitReview submits a star rating and/or a comment for an article
// POST /api/articles/:article_id/review
func (h *ArticleHandler) SubmitReview(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.SubmitReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.scoreService.SubmitReview(c.Request.Context(), userID.(string), articleID, service.ReviewInput{
		Star:        req.Star,
		SaveComment: req.SaveComment,
		Comment:     req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidStars):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrScoreRequired):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ReviewStateResponse{
		Average:       state.Average,
		ScoreCount:    state.ScoreCount,
		PersonalScore: dto.FromModelToPersonalScore(state.Personal),
		Reviews:       dto.FromReviewList(state.Reviews),
	})
}

// bindArticleFilter reads the optional categoryid/brandid query filters
func bindArticleFilter(c *gin.Context) (repository.ArticleFilter, error) {
	var filter repository.ArticleFilter

	if raw := c.Query("categoryid"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.New("invalid categoryid")
		}
		filter.CategoryID = &id
	}
	if raw := c.Query("brandid"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.New("invalid brandid")
		}
		filter.BrandID = &id
	}
	return filter, nil
}
