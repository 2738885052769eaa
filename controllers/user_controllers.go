package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ordering-app/database"
	"ordering-app/middlewares"
	"ordering-app/models"
	"ordering-app/utils"
)

type UserController struct {
	DB *database.Database
}

func NewUserController(db *database.Database) *UserController {
	return &UserController{DB: db}
}

// Register creates a diner account and opens a session for it.
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Roles:    []models.UserRole{{Role: models.RoleDiner}},
	}

	created, err := uc.DB.CreateUser(user)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	token, err := utils.GenerateToken(created)
	if err != nil {
		utils.ErrorLogger.Printf("token generation failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}
	if err := uc.DB.LoginUser(created.ID, token); err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s", created.Email)

	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"user":  created,
		"token": token,
	})
}

// Login verifies the credentials and opens a session.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.DB.GetUser(input.Email, input.Password)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.ErrorLogger.Printf("token generation failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}
	if err := uc.DB.LoginUser(user.ID, token); err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout revokes the session for the presented token.
func (uc *UserController) Logout(c *gin.Context) {
	token, ok := middlewares.CurrentToken(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	if err := uc.DB.LogoutUser(token); err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Logout successful", nil)
}

// UpdateUser applies a partial profile update. Users may update themselves;
// admins may update anyone.
func (uc *UserController) UpdateUser(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	if !models.CanModifyUser(actor, uint(targetID)) {
		utils.RespondError(c, http.StatusForbidden, errors.New("unauthorized"))
		return
	}

	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated, err := uc.DB.UpdateUser(uint(targetID), input.Name, input.Email, input.Password)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User updated", updated)
}
