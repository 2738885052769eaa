package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ordering-app/database"
	"ordering-app/models"
	"ordering-app/router"
	"ordering-app/utils"
)

// Full-stack scenario: register a diner, log in, place an order against an
// admin-created franchise/store/menu, then log out.
func TestOrderingEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	utils.InitJWT("integration-secret")

	gormDB, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(gormDB))
	db := database.New(gormDB, 10, 10)

	r := router.SetupRouter(db, noopFulfiller{})

	send := func(method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req, err := http.NewRequest(method, path, &buf)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		var decoded map[string]interface{}
		if w.Body.Len() > 0 {
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
		}
		return w, decoded
	}

	// admin seeded directly in the store; registration only creates diners
	admin, err := db.CreateUser(models.User{
		Name:     "owner",
		Email:    "admin@test.com",
		Password: "admin-pw",
		Roles:    []models.UserRole{{Role: models.RoleAdmin}},
	})
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(admin)
	require.NoError(t, err)
	require.NoError(t, db.LoginUser(admin.ID, adminToken))

	// diner registers and the returned token is an active session
	w, resp := send("POST", "/register", "", map[string]string{
		"name": "d", "email": "d@test.com", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	dinerToken := resp["data"].(map[string]interface{})["token"].(string)
	assert.True(t, db.IsLoggedIn(dinerToken))

	// franchisee must exist before the franchise names them as admin
	w, _ = send("POST", "/register", "", map[string]string{
		"name": "f", "email": "f@test.com", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp = send("POST", "/api/franchise", adminToken, map[string]interface{}{
		"name": "P", "admins": []map[string]string{{"email": "f@test.com"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	franchiseID := uint(resp["data"].(map[string]interface{})["id"].(float64))

	w, resp = send("POST", fmt.Sprintf("/api/franchise/%d/store", franchiseID), adminToken, map[string]string{"name": "downtown"})
	require.Equal(t, http.StatusCreated, w.Code)
	storeID := uint(resp["data"].(map[string]interface{})["id"].(float64))

	w, _ = send("PUT", "/api/order/menu", adminToken, map[string]interface{}{
		"title": "Veggie", "description": "garden", "image": "veggie.png", "price": 0.05,
	})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = send("PUT", "/api/order/menu", adminToken, map[string]interface{}{
		"title": "Pepperoni", "description": "spicy", "image": "pep.png", "price": 0.10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = send("POST", "/api/order", dinerToken, map[string]interface{}{
		"franchiseId": franchiseID,
		"storeId":     storeID,
		"items": []map[string]string{
			{"description": "Veggie"},
			{"description": "Pepperoni"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	items := resp["data"].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 2)

	w, resp = send("GET", "/api/order", dinerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	orders := resp["data"].(map[string]interface{})["orders"].([]interface{})
	require.Len(t, orders, 1)

	// admin sees revenue on the franchise listing
	w, resp = send("GET", "/api/franchise", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	franchises := resp["data"].(map[string]interface{})["franchises"].([]interface{})
	require.Len(t, franchises, 1)
	stores := franchises[0].(map[string]interface{})["stores"].([]interface{})
	require.Len(t, stores, 1)
	assert.InDelta(t, 0.15, stores[0].(map[string]interface{})["totalRevenue"].(float64), 1e-9)

	w, _ = send("POST", "/api/logout", dinerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, db.IsLoggedIn(dinerToken))

	w, _ = send("GET", "/api/order", dinerToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
