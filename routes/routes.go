package routes

import (
	"net/http"

	"blogapi/app/auth"
	"blogapi/app/controllers"
	"blogapi/app/metrics"
	"blogapi/app/middleware"
	"blogapi/app/repositories"
	"blogapi/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes defines the application's routes and returns a router,
// using the provided Badger DB and token manager.
func SetupRoutes(db *badger.DB, tokens *auth.TokenManager) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)

	provider := metrics.NewPrometheusProvider()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Metrics(provider))

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	userService := services.NewUserService(userRepo, postRepo)
	postService := services.NewPostService(postRepo, userRepo)
	authService := services.NewAuthService(userRepo, tokens)

	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService)
	authController := controllers.NewAuthController(authService)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// All remaining endpoints speak JSON
	api := router.NewRoute().Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// User endpoints; registration is open to anyone
	api.HandleFunc("/users/", userController.Index).Methods("GET")
	api.HandleFunc("/users/", userController.Create).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/", userController.Show).Methods("GET")

	// Token endpoints
	api.HandleFunc("/token-auth/", authController.Token).Methods("POST")
	api.HandleFunc("/token-refresh/", authController.Refresh).Methods("POST")
	api.HandleFunc("/token-verify/", authController.Verify).Methods("POST")

	// Post endpoints; reads are public, creation needs a bearer token
	api.HandleFunc("/posts/", postController.Index).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}/", postController.Show).Methods("GET")

	requireAuth := middleware.RequireAuth(tokens, provider)
	api.Handle("/posts/", requireAuth(http.HandlerFunc(postController.Create))).Methods("POST")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
