package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/artesania/artesania-api/app/configs"
	"github.com/artesania/artesania-api/app/models"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Favorite{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewRouter(db, configs.ENV{JWTSecret: "test-secret"}), db
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
}

func seedProduct(t *testing.T, db *gorm.DB, stock int) (*models.User, *models.Product) {
	t.Helper()

	artist := &models.User{
		FirstName: "Pablo",
		LastName:  "Gargallo",
		Email:     fmt.Sprintf("artist-%d@example.com", stock),
		Password:  "irrelevant",
		Role:      models.RoleArtist,
		IsActive:  true,
	}
	if err := db.Create(artist).Error; err != nil {
		t.Fatalf("failed to create artist: %v", err)
	}

	product := &models.Product{
		ArtistID: artist.ID,
		Name:     "Bronze Figure",
		Category: models.CategorySculptures,
		Details:  "Cast bronze",
		Amount:   stock,
		Price:    decimal.NewFromInt(120),
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return artist, product
}

func registerUser(t *testing.T, router *mux.Router, email string) string {
	t.Helper()

	recorder := doJSON(t, router, http.MethodPost, "/register", map[string]any{
		"firstname": "Ana",
		"lastname":  "Mendieta",
		"email":     email,
		"password":  "secret123",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", recorder.Code, recorder.Body.String())
	}

	var payload models.UserPayload
	decodeBody(t, recorder, &payload)
	return payload.ID
}

func TestRegisterAndLogin(t *testing.T) {
	router, _ := setupRouter(t)

	registerUser(t, router, "ana@example.com")

	t.Run("duplicate email returns 409 with the uniform body", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/register", map[string]any{
			"firstname": "Ana",
			"lastname":  "Mendieta",
			"email":     "ana@example.com",
			"password":  "secret123",
		})
		if recorder.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", recorder.Code)
		}

		var body struct {
			Message    string `json:"message"`
			StatusCode int    `json:"status_code"`
		}
		decodeBody(t, recorder, &body)
		if body.StatusCode != http.StatusConflict || body.Message == "" {
			t.Errorf("unexpected error body: %+v", body)
		}
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/login", map[string]any{
			"email":    "ana@example.com",
			"password": "wrong",
		})
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", recorder.Code)
		}
	})

	t.Run("login token grants /protected", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/login", map[string]any{
			"email":    "ana@example.com",
			"password": "secret123",
		})
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
		}

		var body struct {
			Token string             `json:"token"`
			User  models.UserPayload `json:"user"`
		}
		decodeBody(t, recorder, &body)
		if body.Token == "" {
			t.Fatal("expected a token")
		}
		if body.User.Role != "customer" {
			t.Errorf("expected customer role, got %s", body.User.Role)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+body.Token)
		protected := httptest.NewRecorder()
		router.ServeHTTP(protected, req)
		if protected.Code != http.StatusOK {
			t.Fatalf("expected 200 from /protected, got %d", protected.Code)
		}

		var current models.UserPayload
		decodeBody(t, protected, &current)
		if current.ID != body.User.ID {
			t.Errorf("protected returned user %s, want %s", current.ID, body.User.ID)
		}
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", recorder.Code)
		}
	})
}

func TestCartEndpoints(t *testing.T) {
	router, db := setupRouter(t)
	_, product := seedProduct(t, db, 2)
	userID := registerUser(t, router, "buyer@example.com")

	addBody := map[string]any{
		"item":        map[string]any{"id": product.ID},
		"currentUser": map[string]any{"id": userID},
	}

	t.Run("add to cart", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/my-cart", addBody)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
		}

		var body struct {
			Message  string `json:"message"`
			OrderID  string `json:"order_id"`
			ProdID   string `json:"prod_id"`
			Quantity int    `json:"quantity"`
			Stock    int    `json:"stock"`
		}
		decodeBody(t, recorder, &body)
		if body.OrderID == "" || body.ProdID != product.ID {
			t.Errorf("unexpected body: %+v", body)
		}
		if body.Quantity != 1 || body.Stock != 1 {
			t.Errorf("expected quantity 1 / stock 1, got %d / %d", body.Quantity, body.Stock)
		}
	})

	t.Run("stock exceeded responds 200 without mutating", func(t *testing.T) {
		// Second add hits the stock of 2; the third must be refused.
		if recorder := doJSON(t, router, http.MethodPost, "/my-cart", addBody); recorder.Code != http.StatusCreated {
			t.Fatalf("second add: expected 201, got %d", recorder.Code)
		}
		recorder := doJSON(t, router, http.MethodPost, "/my-cart", addBody)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}

		var body map[string]any
		decodeBody(t, recorder, &body)
		if _, ok := body["message"]; !ok {
			t.Errorf("expected an explanatory message, got %v", body)
		}

		var item models.OrderItem
		if err := db.Where("product_id = ?", product.ID).First(&item).Error; err != nil {
			t.Fatalf("failed to load item: %v", err)
		}
		if item.Quantity != 2 {
			t.Errorf("expected quantity to remain 2, got %d", item.Quantity)
		}
	})

	t.Run("list cart", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/my-cart/"+userID, nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}

		var cart []struct {
			OrderID string `json:"order_id"`
			Items   []struct {
				ItemID          string                `json:"item_id"`
				QuantityOrdered int                   `json:"quantity_ordered"`
				Product         models.ProductPayload `json:"product"`
			} `json:"items"`
		}
		decodeBody(t, recorder, &cart)
		if len(cart) != 1 || len(cart[0].Items) != 1 {
			t.Fatalf("expected one order with one line, got %s", recorder.Body.String())
		}
		if cart[0].Items[0].QuantityOrdered != 2 {
			t.Errorf("expected quantity_ordered 2, got %d", cart[0].Items[0].QuantityOrdered)
		}
	})

	t.Run("remove from cart", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodDelete, "/my-cart/"+product.ID, map[string]any{
			"currentUser": map[string]any{"id": userID},
		})
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
		}

		list := doJSON(t, router, http.MethodGet, "/my-cart/"+userID, nil)
		var cart []json.RawMessage
		decodeBody(t, list, &cart)
		if len(cart) != 0 {
			t.Errorf("expected empty cart, got %s", list.Body.String())
		}
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/my-cart", map[string]any{
			"item":        map[string]any{"id": "no-such-product"},
			"currentUser": map[string]any{"id": userID},
		})
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", recorder.Code)
		}
	})

	t.Run("unknown request field is 400", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/my-cart", map[string]any{
			"item":        map[string]any{"id": product.ID},
			"currentUser": map[string]any{"id": userID},
			"extra":       true,
		})
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", recorder.Code)
		}
	})
}

func TestCatalogEndpoints(t *testing.T) {
	router, db := setupRouter(t)

	t.Run("bulk create users", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/users", []map[string]any{
			{
				"firstname": "Luisa",
				"lastname":  "Roldan",
				"email":     "luisa@example.com",
				"password":  "secret123",
				"rol":       "artist",
				"is_active": true,
			},
		})
		if recorder.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
		}

		var users []models.UserPayload
		decodeBody(t, recorder, &users)
		if len(users) != 1 || users[0].Role != "artist" {
			t.Errorf("unexpected payload: %+v", users)
		}
	})

	t.Run("bulk create products and fetch one", func(t *testing.T) {
		var artist models.User
		if err := db.First(&artist, "email = ?", "luisa@example.com").Error; err != nil {
			t.Fatalf("failed to load artist: %v", err)
		}

		recorder := doJSON(t, router, http.MethodPost, "/products", []map[string]any{
			{
				"artist_id": artist.ID,
				"name":      "Terracotta Angel",
				"category":  "sculptures",
				"details":   "Polychrome terracotta",
				"amount":    3,
				"price":     "250",
			},
		})
		if recorder.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
		}

		var products []models.ProductPayload
		decodeBody(t, recorder, &products)
		if len(products) != 1 || products[0].Category != "sculptures" {
			t.Fatalf("unexpected payload: %+v", products)
		}

		single := doJSON(t, router, http.MethodGet, "/products/"+products[0].ID, nil)
		if single.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", single.Code)
		}
	})

	t.Run("favorites", func(t *testing.T) {
		var artist models.User
		if err := db.First(&artist, "email = ?", "luisa@example.com").Error; err != nil {
			t.Fatalf("failed to load artist: %v", err)
		}
		var product models.Product
		if err := db.First(&product).Error; err != nil {
			t.Fatalf("failed to load product: %v", err)
		}

		recorder := doJSON(t, router, http.MethodPost, "/favorites", map[string]any{
			"user_id": artist.ID,
			"prod_id": product.ID,
		})
		if recorder.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
		}

		list := doJSON(t, router, http.MethodGet, "/favorites?user_id="+artist.ID, nil)
		if list.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", list.Code)
		}
		var favorites []models.FavoritePayload
		decodeBody(t, list, &favorites)
		if len(favorites) != 1 {
			t.Errorf("expected one favorite, got %+v", favorites)
		}
	})

	t.Run("order items validate references", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/order_items", map[string]any{
			"order_id":   "no-such-order",
			"product_id": "no-such-product",
			"quantity":   1,
		})
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", recorder.Code)
		}
	})
}
