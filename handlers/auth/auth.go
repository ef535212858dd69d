package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/middleware"
	"github.com/Ayush5112006/dduhack-sub002/models"
	"github.com/Ayush5112006/dduhack-sub002/utils"
	"github.com/Ayush5112006/dduhack-sub002/utils/response"

	"github.com/gin-gonic/gin"
)

// Login authenticates a user and sets the auth cookie
// @Summary Login
// @Description Authenticate with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400,401,403 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}
	if user.Blocked {
		response.Error(c, http.StatusForbidden, ErrAccountBlocked)
		return
	}

	token, err := middleware.GenerateToken(user.ID, req.RememberMe)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	now := time.Now()
	database.DB.Model(&user).Update("last_connected", now)
	user.LastConnected = &now

	setCookieToken(c, token, req.RememberMe)
	c.JSON(http.StatusOK, authResponse(token, &user))
}

// RegisterUser creates a new participant account
// @Summary Register
// @Description Create a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		response.Error(c, http.StatusBadRequest, ErrEmailInUse)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrHashPasswordFailed)
		return
	}

	user := models.User{
		Email:     email,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Password:  hashed,
		Role:      models.RoleParticipant,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrUserCreateFailed)
		return
	}

	token, err := middleware.GenerateToken(user.ID, false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	setCookieToken(c, token, false)
	c.JSON(http.StatusCreated, authResponse(token, &user))
}

// CheckAuth returns the authenticated user's profile
// @Summary Check authentication
// @Description Validate the current token and return the account
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
	tokenString := extractRequestToken(c)
	if tokenString == "" {
		response.Error(c, http.StatusUnauthorized, ErrNoTokenProvided)
		return
	}

	userID, err := middleware.ParseToken(tokenString)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidExpiredToken)
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, ErrUserNotFound)
		return
	}

	c.JSON(http.StatusOK, authResponse(tokenString, &user))
}

// Logout revokes the current token and clears the cookie
// @Summary Logout
// @Description Revoke the current session token
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	if tokenString := extractRequestToken(c); tokenString != "" {
		middleware.RevokeToken(tokenString, 30*24*time.Hour)
	}

	c.SetCookie("auth_token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": MsgLogoutSuccess})
}

func extractRequestToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func authResponse(token string, user *models.User) AuthResponse {
	return AuthResponse{
		Token:         token,
		UserID:        user.ID,
		Email:         user.Email,
		Firstname:     user.Firstname,
		Lastname:      user.Lastname,
		Role:          user.Role,
		LastConnected: user.LastConnected,
		Blocked:       user.Blocked,
	}
}
