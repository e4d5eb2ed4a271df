package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopcatalog/internal/http-api/dto"
	"shopcatalog/internal/http-api/handler"
	"shopcatalog/internal/http-api/models"
	"shopcatalog/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBasketService struct {
	mock.Mock
}

func (m *MockBasketService) Details(ctx context.Context, id int64) (*models.Basket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Basket), args.Error(1)
}

func (m *MockBasketService) ListForUser(ctx context.Context, userID string) ([]models.Basket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Basket), args.Error(1)
}

func setupBasketRouter(basketSvc *MockBasketService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewBasketHandler(basketSvc)
	h.RegisterRoutes(r.Group("/api"), fakeRequireAuth(userID))
	return r
}

func TestBasketHandler_Details(t *testing.T) {
	basketSvc := new(MockBasketService)
	r := setupBasketRouter(basketSvc, "user-7")

	basket := &models.Basket{
		ID:       5,
		UserID:   "user-7",
		Quantity: 2,
		Article: &models.Article{
			ID:       20,
			Name:     "Hoodie",
			Price:    39.99,
			Category: models.Category{Name: "Clothing"},
			Brand:    models.Brand{Name: "Acme"},
		},
		User: &models.User{ID: "user-7", Username: "alice"},
	}

	t.Run("Success", func(t *testing.T) {
		basketSvc.On("Details", mock.Anything, int64(5)).Return(basket, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/baskets/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.BasketResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, int64(5), response.ID)
		assert.Equal(t, 2, response.Quantity)
		assert.Equal(t, "Hoodie", response.Article.Name)
		assert.Equal(t, "alice", response.User.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		basketSvc.On("Details", mock.Anything, int64(404)).Return(nil, service.ErrBasketNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/baskets/404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/baskets/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		anon := setupBasketRouter(new(MockBasketService), "")

		req, _ := http.NewRequest(http.MethodGet, "/api/baskets/5", nil)
		w := httptest.NewRecorder()
		anon.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestBasketHandler_List(t *testing.T) {
	basketSvc := new(MockBasketService)
	r := setupBasketRouter(basketSvc, "user-7")

	baskets := []models.Basket{
		{ID: 5, UserID: "user-7", Quantity: 1, Article: &models.Article{ID: 20, Name: "Hoodie"}},
		{ID: 6, UserID: "user-7", Quantity: 3, Article: &models.Article{ID: 21, Name: "Mug"}},
	}
	basketSvc.On("ListForUser", mock.Anything, "user-7").Return(baskets, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/baskets", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
}
