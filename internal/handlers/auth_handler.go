package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/redis"
	"erp_backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	userService services.UserService
}

func NewAuthHandler(authService services.AuthService, userService services.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	fieldErrs := services.FieldErrors{}
	if req.Email == "" {
		fieldErrs["email"] = "This field is required."
	}
	if req.Password == "" {
		fieldErrs["password"] = "This field is required."
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"email": user.Email,
		"name":  user.Name,
	})
}

func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"email":     user.Email,
		"name":      user.Name,
		"last_name": user.LastName,
		"phone":     user.Phone,
		"is_staff":  user.IsStaff,
	})
}

// Me returns the profile of the user behind the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	value, _ := c.Get(sessionKey)
	session, ok := value.(*redis.SessionData)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token."})
		return
	}

	user, err := h.userService.GetUserByID(session.UserID)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
		if err := h.authService.Logout(token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Logged out."})
}

// requireAdmin loads the requesting user and checks the ADM role. User
// management endpoints are the only ones gated this way.
func (h *AuthHandler) requireAdmin(c *gin.Context) bool {
	value, _ := c.Get(sessionKey)
	session, ok := value.(*redis.SessionData)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token."})
		return false
	}

	requester, err := h.userService.GetUserByID(session.UserID)
	if err != nil {
		renderServiceError(c, err)
		return false
	}
	if !h.userService.HasRole(requester, models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"detail": "You do not have permission to perform this action."})
		return false
	}
	return true
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	users, err := h.userService.GetAllUsers()
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AuthHandler) ListRoles(c *gin.Context) {
	roles, err := h.userService.GetAllRoles()
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *AuthHandler) EnableUser(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	id, ok := userIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.EnableUser(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) DeactivateUser(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	id, ok := userIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.DeactivateUser(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) AssignRole(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	if req.Role == "" {
		c.JSON(http.StatusBadRequest, services.FieldErrors{"role": "This field is required."})
		return
	}

	if err := h.userService.AssignRole(id, req.Role); err != nil {
		renderServiceError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return 0, false
	}
	return uint(id), true
}
