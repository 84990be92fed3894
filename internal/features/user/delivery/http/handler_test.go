package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"user-service-backend/internal/common/middleware"
	"user-service-backend/internal/features/user/models"
	"user-service-backend/internal/features/user/service"
)

const testToken = "unit-test-agent"

type stubUserService struct {
	page      *models.UserPage
	listErr   error
	user      *models.User
	getErr    error
	created   *models.User
	createErr error
	updated   *models.UserResponse
	updateErr error
	deleteErr error
}

func (s *stubUserService) ListUsers(_ context.Context, _, _ int64) (*models.UserPage, error) {
	return s.page, s.listErr
}

func (s *stubUserService) GetUser(_ context.Context, _ string) (*models.User, error) {
	return s.user, s.getErr
}

func (s *stubUserService) CreateUser(_ context.Context, _ *models.UserInput) (*models.User, error) {
	return s.created, s.createErr
}

func (s *stubUserService) UpdateUser(_ context.Context, _ string, _ *models.UserInput) (*models.UserResponse, error) {
	return s.updated, s.updateErr
}

func (s *stubUserService) DeleteUser(_ context.Context, _ string) error {
	return s.deleteErr
}

func setupRouter(svc service.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	authed := router.Group("", middleware.ClientAuth(testToken))
	NewUserHandler(svc).RegisterRoutes(authed)

	return router
}

func doRequest(router *gin.Engine, method, path, body, agent string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if agent != "" {
		req.Header.Set("User-Agent", agent)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func TestClientAuthGate(t *testing.T) {
	router := setupRouter(&stubUserService{})

	requests := []struct {
		method, path string
	}{
		{http.MethodGet, "/user/find"},
		{http.MethodGet, "/user/find/5f9f1b9b9c9d1b1b8c8c8c8c"},
		{http.MethodPost, "/user/create"},
		{http.MethodPut, "/user/update/5f9f1b9b9c9d1b1b8c8c8c8c"},
		{http.MethodDelete, "/user/delete/5f9f1b9b9c9d1b1b8c8c8c8c"},
	}

	for _, r := range requests {
		rec := doRequest(router, r.method, r.path, "", "wrong-agent")
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", r.method, r.path)
		assert.Equal(t, "Header is not valid.", detail(t, rec))

		rec = doRequest(router, r.method, r.path, "", "")
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s without header", r.method, r.path)
	}
}

func TestListUsersHandler(t *testing.T) {
	page := &models.UserPage{
		Counts: 1,
		Skip:   0,
		Limit:  10,
		Users:  []*models.User{{ID: primitive.NewObjectID(), Username: "dev"}},
	}
	router := setupRouter(&stubUserService{page: page})

	rec := doRequest(router, http.MethodGet, "/user/find?skip=0&limit=10", "", testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.UserPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.Counts)
	require.Len(t, got.Users, 1)
	assert.Equal(t, "dev", got.Users[0].Username)
}

func TestListUsersHandlerEmptyPage(t *testing.T) {
	router := setupRouter(&stubUserService{listErr: service.ErrUserNotFound})

	rec := doRequest(router, http.MethodGet, "/user/find", "", testToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found item.", detail(t, rec))
}

func TestListUsersHandlerBadQuery(t *testing.T) {
	router := setupRouter(&stubUserService{})

	rec := doRequest(router, http.MethodGet, "/user/find?skip=-1", "", testToken)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(router, http.MethodGet, "/user/find?limit=0", "", testToken)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetUserHandler(t *testing.T) {
	id := primitive.NewObjectID()
	router := setupRouter(&stubUserService{user: &models.User{ID: id, Username: "dev"}})

	rec := doRequest(router, http.MethodGet, "/user/find/"+id.Hex(), "", testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
}

func TestGetUserHandlerNotFound(t *testing.T) {
	for _, svcErr := range []error{service.ErrUserNotFound, service.ErrInvalidID} {
		router := setupRouter(&stubUserService{getErr: svcErr})

		rec := doRequest(router, http.MethodGet, "/user/find/whatever", "", testToken)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not found item.", detail(t, rec))
	}
}

func TestCreateUserHandler(t *testing.T) {
	created := &models.User{ID: primitive.NewObjectID(), Username: "dev"}
	router := setupRouter(&stubUserService{created: created})

	rec := doRequest(router, http.MethodPost, "/user/create", `{"username":"dev"}`, testToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
}

func TestCreateUserHandlerErrors(t *testing.T) {
	router := setupRouter(&stubUserService{createErr: service.ErrUsernameTaken})
	rec := doRequest(router, http.MethodPost, "/user/create", `{"username":"dev"}`, testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already exist.", detail(t, rec))

	router = setupRouter(&stubUserService{createErr: service.ErrInvalidUsername})
	rec = doRequest(router, http.MethodPost, "/user/create", `{"username":"1dev"}`, testToken)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Missing username never reaches the service.
	router = setupRouter(&stubUserService{})
	rec = doRequest(router, http.MethodPost, "/user/create", `{"firstname":"kane"}`, testToken)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(router, http.MethodPost, "/user/create", `{not json`, testToken)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateUserHandler(t *testing.T) {
	firstname := "watcharapon"
	updated := &models.UserResponse{ID: primitive.NewObjectID().Hex(), Username: "kane", Firstname: &firstname}
	router := setupRouter(&stubUserService{updated: updated})

	rec := doRequest(router, http.MethodPut, "/user/update/"+updated.ID, `{"username":"kane","firstname":"watcharapon"}`, testToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, updated.ID, got.ID)
	assert.Equal(t, "kane", got.Username)
}

func TestUpdateUserHandlerErrors(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	router := setupRouter(&stubUserService{updateErr: service.ErrUsernameTaken})
	rec := doRequest(router, http.MethodPut, "/user/update/"+id, `{"username":"kane"}`, testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already exist.", detail(t, rec))

	for _, svcErr := range []error{service.ErrNotModified, service.ErrInvalidID} {
		router = setupRouter(&stubUserService{updateErr: svcErr})
		rec = doRequest(router, http.MethodPut, "/user/update/"+id, `{"username":"kane"}`, testToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Not found "+id+" or update already exits.", detail(t, rec))
	}

	router = setupRouter(&stubUserService{updateErr: service.ErrInvalidUsername})
	rec = doRequest(router, http.MethodPut, "/user/update/"+id, `{"username":"1bad"}`, testToken)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteUserHandler(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	router := setupRouter(&stubUserService{})
	rec := doRequest(router, http.MethodDelete, "/user/delete/"+id, "", testToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	for _, svcErr := range []error{service.ErrUserNotFound, service.ErrInvalidID} {
		router = setupRouter(&stubUserService{deleteErr: svcErr})
		rec = doRequest(router, http.MethodDelete, "/user/delete/"+id, "", testToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "course is not found "+id+".", detail(t, rec))
	}
}
