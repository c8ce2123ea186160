package category

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storefront-api/internal/storage"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListCategories(ctx context.Context) ([]*CategoryDTO, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]*CategoryDTO); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) GetCategory(ctx context.Context, id int64) (*CategoryDTO, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*CategoryDTO); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) CreateCategory(ctx context.Context, dto CategoryDTO) (*CategoryDTO, error) {
	args := m.Called(ctx, dto)
	if v, ok := args.Get(0).(*CategoryDTO); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) ReplaceCategory(ctx context.Context, id int64, dto CategoryDTO) (*CategoryDTO, error) {
	args := m.Called(ctx, id, dto)
	if v, ok := args.Get(0).(*CategoryDTO); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) PatchCategory(ctx context.Context, id int64, patch CategoryPatch) (*CategoryDTO, error) {
	args := m.Called(ctx, id, patch)
	if v, ok := args.Get(0).(*CategoryDTO); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newTestRouter(svc Service) *chi.Mux {
	router := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ListCategories(t *testing.T) {
	svc := &mockService{}
	svc.On("ListCategories", mock.Anything).Return([]*CategoryDTO{
		{ID: 1, Name: "category1", CategoryURL: BaseURL + "/1"},
		{ID: 2, Name: "category2", CategoryURL: BaseURL + "/2"},
	}, nil)

	for _, path := range []string{BaseURL, BaseURL + "/"} {
		rec := serve(newTestRouter(svc), http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)

		var body CategoryListDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Categories, 2)
	}
}

func TestHandler_GetCategory(t *testing.T) {
	svc := &mockService{}
	svc.On("GetCategory", mock.Anything, int64(1)).
		Return(&CategoryDTO{ID: 1, Name: "category3", CategoryURL: BaseURL + "/1"}, nil)

	rec := serve(newTestRouter(svc), http.MethodGet, BaseURL+"/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"category3","category_url":"/api/v1/categories/1"}`, rec.Body.String())
}

func TestHandler_GetCategoryNotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("GetCategory", mock.Anything, int64(1)).
		Return(nil, fmt.Errorf("get category 1: %w", storage.ErrNotFound))

	rec := serve(newTestRouter(svc), http.MethodGet, BaseURL+"/1", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "resource not found")
}

func TestHandler_GetCategoryInvalidID(t *testing.T) {
	svc := &mockService{}

	rec := serve(newTestRouter(svc), http.MethodGet, BaseURL+"/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetCategory", mock.Anything, mock.Anything)
}

func TestHandler_CreateCategory(t *testing.T) {
	svc := &mockService{}
	svc.On("CreateCategory", mock.Anything, CategoryDTO{Name: "category4"}).
		Return(&CategoryDTO{ID: 1, Name: "category4", CategoryURL: BaseURL + "/1"}, nil)

	rec := serve(newTestRouter(svc), http.MethodPost, BaseURL+"/", `{"name":"category4"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body CategoryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "category4", body.Name)
	assert.Equal(t, BaseURL+"/1", body.CategoryURL)
}

func TestHandler_CreateCategoryMalformedBody(t *testing.T) {
	svc := &mockService{}

	rec := serve(newTestRouter(svc), http.MethodPost, BaseURL, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestHandler_ReplaceCategory(t *testing.T) {
	svc := &mockService{}
	svc.On("ReplaceCategory", mock.Anything, int64(1), CategoryDTO{Name: "category5"}).
		Return(&CategoryDTO{ID: 1, Name: "category5", CategoryURL: BaseURL + "/1"}, nil)

	rec := serve(newTestRouter(svc), http.MethodPut, BaseURL+"/1", `{"name":"category5"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"category5","category_url":"/api/v1/categories/1"}`, rec.Body.String())
}

func TestHandler_PatchCategory(t *testing.T) {
	svc := &mockService{}
	svc.On("PatchCategory", mock.Anything, int64(1), mock.MatchedBy(func(p CategoryPatch) bool {
		return p.Name != nil && *p.Name == "category6"
	})).Return(&CategoryDTO{ID: 1, Name: "category6", CategoryURL: BaseURL + "/1"}, nil)

	rec := serve(newTestRouter(svc), http.MethodPatch, BaseURL+"/1", `{"name":"category6"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"category_url":"/api/v1/categories/1"`)
}

func TestHandler_PatchCategoryNullLeavesFieldUnset(t *testing.T) {
	svc := &mockService{}
	svc.On("PatchCategory", mock.Anything, int64(1), CategoryPatch{}).
		Return(&CategoryDTO{ID: 1, Name: "unchanged", CategoryURL: BaseURL + "/1"}, nil)

	rec := serve(newTestRouter(svc), http.MethodPatch, BaseURL+"/1", `{"name":null}`)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_PatchCategoryNotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("PatchCategory", mock.Anything, int64(9), mock.Anything).Return(nil, storage.ErrNotFound)

	rec := serve(newTestRouter(svc), http.MethodPatch, BaseURL+"/9", `{"name":"x"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_DeleteCategory(t *testing.T) {
	svc := &mockService{}
	svc.On("DeleteCategory", mock.Anything, int64(1)).Return(nil)

	rec := serve(newTestRouter(svc), http.MethodDelete, BaseURL+"/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	svc.AssertCalled(t, "DeleteCategory", mock.Anything, int64(1))
}
