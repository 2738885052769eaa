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

type FranchiseController struct {
	DB *database.Database
}

func NewFranchiseController(db *database.Database) *FranchiseController {
	return &FranchiseController{DB: db}
}

// ListFranchises is public; an authenticated admin additionally sees the
// admin list and per-store revenue. Supports page/limit windowing and a
// name filter where * matches any sequence of characters.
func (fc *FranchiseController) ListFranchises(c *gin.Context) {
	actor, _ := middlewares.CurrentUser(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	name := c.Query("name")

	franchises, more, err := fc.DB.GetFranchises(actor, page, limit, name)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of franchises", gin.H{
		"franchises": franchises,
		"more":       more,
	})
}

// ListUserFranchises returns the franchises a user operates. When the actor
// may not view the target's set, the response is an empty list rather than
// a 403.
func (fc *FranchiseController) ListUserFranchises(c *gin.Context) {
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

	if !models.CanViewFranchiseSet(actor, uint(targetID)) {
		utils.RespondJSON(c, http.StatusOK, "List of franchises", []models.Franchise{})
		return
	}

	franchises, err := fc.DB.GetUserFranchises(uint(targetID))
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of franchises", franchises)
}

// CreateFranchise is admin-only. Every admin email must resolve to an
// existing user.
func (fc *FranchiseController) CreateFranchise(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok || !actor.IsRole(models.RoleAdmin) {
		utils.RespondError(c, http.StatusForbidden, errors.New("unable to create a franchise"))
		return
	}

	var input struct {
		Name   string                  `json:"name" binding:"required"`
		Admins []models.FranchiseAdmin `json:"admins"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	franchise, err := fc.DB.CreateFranchise(models.Franchise{Name: input.Name, Admins: input.Admins})
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.InfoLogger.Printf("Franchise created: %s", franchise.Name)

	utils.RespondJSON(c, http.StatusCreated, "Franchise created", franchise)
}

func (fc *FranchiseController) DeleteFranchise(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok || !actor.IsRole(models.RoleAdmin) {
		utils.RespondError(c, http.StatusForbidden, errors.New("unable to delete a franchise"))
		return
	}

	franchiseID, err := strconv.ParseUint(c.Param("franchise_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid franchise id"))
		return
	}

	if err := fc.DB.DeleteFranchise(uint(franchiseID)); err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Franchise deleted", nil)
}

// CreateStore is allowed for admins and the franchise's own franchisee.
func (fc *FranchiseController) CreateStore(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	franchiseID, err := strconv.ParseUint(c.Param("franchise_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid franchise id"))
		return
	}

	if !models.CanManageStore(actor, uint(franchiseID)) {
		utils.RespondError(c, http.StatusForbidden, errors.New("unable to create a store"))
		return
	}

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	store, err := fc.DB.CreateStore(uint(franchiseID), models.Store{Name: input.Name})
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Store created", store)
}

func (fc *FranchiseController) DeleteStore(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	franchiseID, err := strconv.ParseUint(c.Param("franchise_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid franchise id"))
		return
	}
	storeID, err := strconv.ParseUint(c.Param("store_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid store id"))
		return
	}

	if !models.CanManageStore(actor, uint(franchiseID)) {
		utils.RespondError(c, http.StatusForbidden, errors.New("unable to delete a store"))
		return
	}

	if err := fc.DB.DeleteStore(uint(franchiseID), uint(storeID)); err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Store deleted", nil)
}
