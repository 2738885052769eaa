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

// Fulfiller hands a stored order to the external fulfillment service and
// returns its receipt. Transport, retries and backoff live behind this
// interface.
type Fulfiller interface {
	Fulfill(order models.Order) (string, error)
}

type OrderController struct {
	DB        *database.Database
	Fulfiller Fulfiller
}

func NewOrderController(db *database.Database, fulfiller Fulfiller) *OrderController {
	return &OrderController{DB: db, Fulfiller: fulfiller}
}

// GetMenu is public.
func (oc *OrderController) GetMenu(c *gin.Context) {
	menu, err := oc.DB.GetMenu()
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", menu)
}

// AddMenuItem appends a menu item (admin only) and returns the full menu.
func (oc *OrderController) AddMenuItem(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok || !models.CanManageMenu(actor) {
		utils.RespondError(c, http.StatusForbidden, errors.New("unable to add menu item"))
		return
	}

	var input struct {
		Title       string  `json:"title" binding:"required"`
		Description string  `json:"description"`
		Image       string  `json:"image"`
		Price       float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if _, err := oc.DB.AddMenuItem(models.MenuItem{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Price:       input.Price,
	}); err != nil {
		utils.RespondFailure(c, err)
		return
	}

	menu, err := oc.DB.GetMenu()
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item added", menu)
}

// GetOrders returns the caller's own orders, windowed by page.
func (oc *OrderController) GetOrders(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	history, err := oc.DB.GetOrders(actor, page)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order history", history)
}

// CreateOrder stores the order atomically, then hands it to the fulfiller
// and persists the acknowledgment receipt on the order.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var input struct {
		FranchiseID uint `json:"franchiseId" binding:"required"`
		StoreID     uint `json:"storeId" binding:"required"`
		Items       []struct {
			Description string `json:"description" binding:"required"`
		} `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := models.Order{FranchiseID: input.FranchiseID, StoreID: input.StoreID}
	for _, item := range input.Items {
		order.Items = append(order.Items, models.OrderItem{Description: item.Description})
	}

	created, err := oc.DB.AddDinerOrder(actor, order)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	if oc.Fulfiller != nil {
		receipt, err := oc.Fulfiller.Fulfill(created)
		if err != nil {
			utils.ErrorLogger.Printf("fulfillment failed for order %d: %v", created.ID, err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fulfill order"))
			return
		}
		if receipt != "" {
			if err := oc.DB.AttachReceipt(created.ID, receipt); err != nil {
				utils.RespondFailure(c, err)
				return
			}
			created.Receipt = receipt
		}
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", created)
}
