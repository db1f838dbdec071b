package users

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	custom_error "github.com/Robindeep5394188/Material-Review/pkg/errors"
	"github.com/Robindeep5394188/Material-Review/pkg/models"
)

type fakeUserRepository struct {
	users      []models.User
	persisted  []models.CreateUserRequest
	persistErr error
}

func (f *fakeUserRepository) PersistUser(req models.CreateUserRequest, passwordHash string) error {
	if f.persistErr != nil {
		return f.persistErr
	}
	f.persisted = append(f.persisted, req)
	return nil
}

func (f *fakeUserRepository) GetUser(id int) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %d not found", id)
}

func (f *fakeUserRepository) GetUsers() ([]models.User, error) {
	return f.users, nil
}

func setupRouter(repo UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(repo)

	// Routes registered without the auth middleware; authorization is
	// covered by the security package.
	router.POST("/users", handler.RegisterUser)
	router.GET("/users", handler.GetUserList)
	router.GET("/users/:id", handler.GetUser)
	return router
}

func TestRegisterUser(t *testing.T) {
	repo := &fakeUserRepository{}
	router := setupRouter(repo)

	body := []byte(`{"username":"planner1","password":"secret","role":"planner"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.persisted, 1)
	assert.Equal(t, "planner1", repo.persisted[0].Username)
}

func TestRegisterUserDuplicate(t *testing.T) {
	repo := &fakeUserRepository{persistErr: custom_error.WrapDBError("duplicate key", "23505")}
	router := setupRouter(repo)

	body := []byte(`{"username":"planner1","password":"secret","role":"planner"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterUserInvalidPayload(t *testing.T) {
	router := setupRouter(&fakeUserRepository{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(`{"username":""}`)))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser(t *testing.T) {
	repo := &fakeUserRepository{users: []models.User{{ID: 7, Username: "planner1", Role: "planner"}}}
	router := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"planner1"`)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/users/99", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
