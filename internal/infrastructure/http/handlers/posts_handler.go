package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
	"github.com/prasanth-t0205/techblog/internal/application/post"
	"github.com/prasanth-t0205/techblog/internal/domain"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/http/middleware"
)

const defaultRandomCount = 5

type PostsHandler struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	create *post.CreatePost
	edit   *post.EditPost
	delete *post.DeletePost
	log    zerolog.Logger
}

func NewPostsHandler(posts ports.PostRepository, users ports.UserRepository, create *post.CreatePost, edit *post.EditPost, delete_ *post.DeletePost, log zerolog.Logger) *PostsHandler {
	return &PostsHandler{
		posts:  posts,
		users:  users,
		create: create,
		edit:   edit,
		delete: delete_,
		log:    log,
	}
}

func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list posts")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, newPostListResponse(posts))
}

func (h *PostsHandler) Random(w http.ResponseWriter, r *http.Request) {
	count := defaultRandomCount
	if v := r.URL.Query().Get("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			count = n
		}
	}
	posts, err := h.posts.ListRandom(r.Context(), count)
	if err != nil {
		h.log.Error().Err(err).Msg("random posts")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, newPostListResponse(posts))
}

func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParsePostID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "Post not found")
		return
	}
	p, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Msg("get post")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if p == nil {
		writeErr(w, http.StatusNotFound, "Post not found")
		return
	}
	writeJSON(w, http.StatusOK, newPostResponse(p))
}

func (h *PostsHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	posts, err := h.posts.Search(r.Context(), query)
	if err != nil {
		h.log.Error().Err(err).Str("query", query).Msg("search posts")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, newPostListResponse(posts))
}

func (h *PostsHandler) UserPosts(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	u, err := h.users.GetPublicByUsername(r.Context(), username)
	if err != nil {
		h.log.Error().Err(err).Msg("user posts lookup")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if u == nil {
		writeErr(w, http.StatusNotFound, "User not found")
		return
	}
	posts, err := h.posts.ListByUser(r.Context(), u.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("user posts")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, newPostListResponse(posts))
}

func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	current := middleware.AuthUserFromContext(r.Context())
	var body struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
		Img      string `json:"img"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	created, err := h.create.Execute(r.Context(), post.CreatePostInput{
		UserID:   current.ID,
		Title:    body.Title,
		Content:  body.Content,
		Category: body.Category,
		Img:      body.Img,
	})
	if err != nil {
		if code, known := statusForErr(err); known {
			writeErr(w, code, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("create post failed")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, newPostResponse(created))
}

func (h *PostsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	current := middleware.AuthUserFromContext(r.Context())
	id, err := domain.ParsePostID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "Post not found")
		return
	}
	var body struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
		Img      string `json:"img"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	updated, err := h.edit.Execute(r.Context(), post.EditPostInput{
		PostID:   id,
		CallerID: current.ID,
		Title:    body.Title,
		Content:  body.Content,
		Category: body.Category,
		Img:      body.Img,
	})
	if err != nil {
		if code, known := statusForErr(err); known {
			writeErr(w, code, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("edit post failed")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, newPostResponse(updated))
}

func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current := middleware.AuthUserFromContext(r.Context())
	id, err := domain.ParsePostID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "Post not found")
		return
	}
	if err := h.delete.Execute(r.Context(), id, current.ID); err != nil {
		if code, known := statusForErr(err); known {
			writeErr(w, code, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("delete post failed")
		writeErr(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeMessage(w, http.StatusOK, "Post deleted successfully")
}
