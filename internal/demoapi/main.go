/*
Package demoapi
A JSONPlaceholder-flavored blog API holding its records in memory, small
enough to embed in tests and the `arc demo` command. Every collection
answers plain CRUD plus exact-match query filtering; the nested routes
mirror the association endpoints declared resources reach for:

    GET/POST        /posts /comments /albums /photos /todos /users
    GET/PUT/DELETE  /{collection}/{id}
    GET             /posts/{id}/comments   /users/{id}/posts
                    /users/{id}/albums     /users/{id}/todos
                    /albums/{id}/photos
    GET/PUT/DELETE  /users/{id}/profile

Only user 1 is seeded with a profile; the others 404 there, which is the
absence case has_one traversal reports as nil.
*/
package demoapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	store *Store
}

func NewHandler() *Handler {
	return &Handler{store: NewStore()}
}

// Routes builds the demo API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	h.mountCollection(r, "comments", nil)
	h.mountCollection(r, "photos", nil)
	h.mountCollection(r, "todos", nil)
	h.mountCollection(r, "posts", func(r chi.Router) {
		r.Get("/{id}/comments", h.children("comments", "post_id"))
	})
	h.mountCollection(r, "albums", func(r chi.Router) {
		r.Get("/{id}/photos", h.children("photos", "album_id"))
	})
	h.mountCollection(r, "users", func(r chi.Router) {
		r.Get("/{id}/posts", h.children("posts", "user_id"))
		r.Get("/{id}/albums", h.children("albums", "user_id"))
		r.Get("/{id}/todos", h.children("todos", "user_id"))
		r.Get("/{id}/profile", h.getProfile)
		r.Put("/{id}/profile", h.putProfile)
		r.Delete("/{id}/profile", h.deleteProfile)
	})

	return r
}

func (h *Handler) mountCollection(
	r chi.Router, collection string, nested func(chi.Router),
) {
	r.Route("/"+collection, func(r chi.Router) {
		r.Get("/", h.list(collection))
		r.Post("/", h.create(collection))
		r.Get("/{id}", h.get(collection))
		r.Put("/{id}", h.replace(collection))
		r.Delete("/{id}", h.remove(collection))
		if nested != nil {
			nested(r)
		}
	})
}
