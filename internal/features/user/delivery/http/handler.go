package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"user-service-backend/internal/features/user/models"
	"user-service-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/user")
	{
		users.GET("/find", h.ListUsers)
		users.GET("/find/:id", h.GetUser)
		users.POST("/create", h.CreateUser)
		users.PUT("/update/:id", h.UpdateUser)
		users.DELETE("/delete/:id", h.DeleteUser)
	}
}

type listQuery struct {
	Skip  int64 `form:"skip,default=0" binding:"gte=0"`
	Limit int64 `form:"limit,default=10" binding:"gte=1"`
}

// @Summary List users
// @Description Get one page of the user listing along with the total count. An empty page is a 404.
// @Tags users
// @Produce json
// @Security ClientIdentity
// @Param skip query int false "Items to skip" default(0) minimum(0)
// @Param limit query int false "Page size" default(10) minimum(1)
// @Success 200 {object} models.UserPage "Page of users"
// @Failure 403 {object} models.ErrorResponse "Invalid client identity header"
// @Failure 404 {object} models.ErrorResponse "Empty page"
// @Failure 422 {object} models.ErrorResponse "Invalid pagination parameters"
// @Router /user/find [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query listQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	page, err := h.service.ListUsers(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "Not found item."})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// @Summary Get user by id
// @Description Get a single user record by its identifier.
// @Tags users
// @Produce json
// @Security ClientIdentity
// @Param id path string true "User ID"
// @Success 200 {object} models.User "User record"
// @Failure 403 {object} models.ErrorResponse "Invalid client identity header"
// @Failure 404 {object} models.ErrorResponse "Unknown or malformed id"
// @Router /user/find/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		// A malformed id can never name a document, so it reads as absent.
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidID) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "Not found item."})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Create user
// @Description Create a new user; the store assigns the id. Usernames are unique.
// @Tags users
// @Accept json
// @Produce json
// @Security ClientIdentity
// @Param user body models.UserInput true "Candidate user"
// @Success 201 {object} models.User "Stored user record"
// @Failure 400 {object} models.ErrorResponse "Username already taken"
// @Failure 403 {object} models.ErrorResponse "Invalid client identity header"
// @Failure 422 {object} models.ErrorResponse "Payload fails the format rule"
// @Router /user/create [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Username already exist."})
		case errors.Is(err, service.ErrInvalidUsername):
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary Update user
// @Description Replace the user's mutable fields with the payload. The response echoes the payload as written.
// @Tags users
// @Accept json
// @Produce json
// @Security ClientIdentity
// @Param id path string true "User ID"
// @Param user body models.UserInput true "Replacement fields"
// @Success 200 {object} models.UserResponse "Updated user record"
// @Failure 400 {object} models.ErrorResponse "Duplicate username, unknown id or no change"
// @Failure 403 {object} models.ErrorResponse "Invalid client identity header"
// @Failure 422 {object} models.ErrorResponse "Payload fails the format rule"
// @Router /user/update/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Username already exist."})
		case errors.Is(err, service.ErrNotModified), errors.Is(err, service.ErrInvalidID):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Not found %s or update already exits.", id)})
		case errors.Is(err, service.ErrInvalidUsername):
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Delete user
// @Description Remove the user record permanently.
// @Tags users
// @Produce json
// @Security ClientIdentity
// @Param id path string true "User ID"
// @Success 204 "Removed"
// @Failure 400 {object} models.ErrorResponse "Unknown or malformed id"
// @Failure 403 {object} models.ErrorResponse "Invalid client identity header"
// @Router /user/delete/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidID) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("course is not found %s.", id)})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
