package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cogscreen-go/internal/models"
	"cogscreen-go/internal/repository"
)

type AuthHandler struct {
	log *zap.Logger
}

func NewAuthHandler(log *zap.Logger) *AuthHandler {
	return &AuthHandler{log: log}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data"})
		return
	}

	if _, err := repository.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.log.Error("Failed to look up email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account"})
		return
	}

	user, err := repository.CreateUser(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		h.log.Error("Failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account"})
		return
	}

	h.startUserSession(c, user)
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email, "firstName": user.FirstName})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login data"})
		return
	}

	user, err := repository.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !repository.CheckPassword(user, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	h.startUserSession(c, user)
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "email": user.Email, "firstName": user.FirstName})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		h.log.Error("Failed to clear session", zap.Error(err))
	}
	c.Status(http.StatusNoContent)
}

type reminderRequest struct {
	// "HH:MM" UTC, or empty to disable the daily reminder.
	ReminderTime string `json:"reminderTime" binding:"omitempty,datetime=15:04"`
}

// UpdateReminder sets the subject's daily reminder time.
func (h *AuthHandler) UpdateReminder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req reminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reminder time must be HH:MM"})
		return
	}

	if err := repository.UpdateUserReminderTime(c.Request.Context(), user.ID, req.ReminderTime); err != nil {
		h.log.Error("Failed to update reminder time", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update reminder"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) startUserSession(c *gin.Context, user *models.User) {
	session := sessions.Default(c)
	session.Set("userID", user.ID)
	if err := session.Save(); err != nil {
		h.log.Error("Failed to save session", zap.Error(err))
	}
}
