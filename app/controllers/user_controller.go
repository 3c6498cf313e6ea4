package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/services"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for user accounts
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the read representation of a user. The password hash
// stays out of every response.
type userResponse struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	PostsCount int    `json:"posts_count"`
}

type userListResponse struct {
	Count   int             `json:"count"`
	Results []*userResponse `json:"results"`
}

func newUserResponse(user *models.User) *userResponse {
	return &userResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		PostsCount: user.PostsCount,
	}
}

// Create handles user registration
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	user, err := uc.userService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			sendError(w, http.StatusBadRequest, "Username already taken")
			return
		}
		sendError(w, http.StatusBadRequest, "Failed to create user: "+err.Error())
		return
	}

	sendJSON(w, http.StatusCreated, newUserResponse(user))
}

// Index handles listing all users, ordered by posts count
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	ordering := r.URL.Query().Get("ordering")

	users, err := uc.userService.ListUsers(ordering)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch users: "+err.Error())
		return
	}

	results := make([]*userResponse, 0, len(users))
	for _, user := range users {
		results = append(results, newUserResponse(user))
	}
	sendJSON(w, http.StatusOK, userListResponse{Count: len(results), Results: results})
}

// Show handles displaying a single user
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := uc.userService.GetUser(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "User not found")
			return
		}
		sendError(w, http.StatusInternalServerError, "Failed to fetch user: "+err.Error())
		return
	}

	sendJSON(w, http.StatusOK, newUserResponse(user))
}
