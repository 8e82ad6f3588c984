package routes

import (
	"net/http"

	"github.com/artesania/artesania-api/app/auth"
	"github.com/artesania/artesania-api/app/configs"
	"github.com/artesania/artesania-api/app/handlers"
	"github.com/artesania/artesania-api/app/middlewares"
	"github.com/artesania/artesania-api/app/repositories"
	"github.com/artesania/artesania-api/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) *mux.Router {
	renderer := render.New()
	validate := validator.New()

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)

	tokens := auth.NewJWTManager(env.JWTSecret)
	authService := services.NewAuthService(userRepo, tokens)
	cartService := services.NewCartService(db, userRepo, productRepo, orderRepo, orderItemRepo)
	catalogService := services.NewCatalogService(userRepo, productRepo, orderRepo, orderItemRepo, favoriteRepo)

	homeHandler := handlers.NewHomeHandler(renderer)
	authHandler := handlers.NewAuthHandler(renderer, authService, validate)
	cartHandler := handlers.NewCartHandler(renderer, cartService, validate)
	catalogHandler := handlers.NewCatalogHandler(renderer, catalogService, validate)

	router := mux.NewRouter()
	router.HandleFunc("/", homeHandler.Home).Methods("GET")

	router.HandleFunc("/users", catalogHandler.ListUsers).Methods("GET")
	router.HandleFunc("/users", catalogHandler.CreateUsers).Methods("POST")

	router.HandleFunc("/products", catalogHandler.ListProducts).Methods("GET")
	router.HandleFunc("/products", catalogHandler.CreateProducts).Methods("POST")
	router.HandleFunc("/products/{id}", catalogHandler.GetProduct).Methods("GET")

	router.HandleFunc("/orders", catalogHandler.ListOrders).Methods("GET")
	router.HandleFunc("/orders", catalogHandler.CreateOrder).Methods("POST")

	router.HandleFunc("/order_items", catalogHandler.ListOrderItems).Methods("GET")
	router.HandleFunc("/order_items", catalogHandler.CreateOrderItem).Methods("POST")

	router.HandleFunc("/favorites", catalogHandler.ListFavorites).Methods("GET")
	router.HandleFunc("/favorites", catalogHandler.CreateFavorite).Methods("POST")

	router.HandleFunc("/my-cart/{userId}", cartHandler.GetMyCart).Methods("GET")
	router.HandleFunc("/my-cart", cartHandler.AddToCart).Methods("POST")
	router.HandleFunc("/my-cart/{prodId}", cartHandler.RemoveFromCart).Methods("DELETE")

	router.HandleFunc("/prod_order", cartHandler.BulkProdOrder).Methods("POST")
	router.HandleFunc("/user_order", cartHandler.BulkUserOrder).Methods("POST")

	router.HandleFunc("/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/login", authHandler.Login).Methods("POST")

	requireAuth := middlewares.RequireAuth(renderer, authService)
	router.Handle("/protected", requireAuth(http.HandlerFunc(authHandler.Protected))).Methods("GET")

	return router
}
