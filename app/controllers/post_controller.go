package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blogapi/app/middleware"
	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// createPostRequest deliberately has no owner field; the owner always
// comes from the authenticated caller.
type createPostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Index handles listing posts, most recent first, with an optional
// owner filter.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	var ownerFilter *int
	if ownerStr := r.URL.Query().Get("owner"); ownerStr != "" {
		owner, err := strconv.Atoi(ownerStr)
		if err != nil {
			sendError(w, http.StatusBadRequest, "Invalid owner ID")
			return
		}
		ownerFilter = &owner
	}

	posts, err := pc.postService.ListPosts(ownerFilter)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch posts: "+err.Error())
		return
	}

	if posts == nil {
		posts = []*models.Post{}
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Post not found")
			return
		}
		sendError(w, http.StatusInternalServerError, "Failed to fetch post: "+err.Error())
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post for the authenticated caller
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.CreatePost(req.Title, req.Body, claims.UserID)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Failed to create post: "+err.Error())
		return
	}

	sendJSON(w, http.StatusCreated, post)
}
