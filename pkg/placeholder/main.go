/*
Package placeholder
Ready-made declarations for JSONPlaceholder-style blog APIs, the bundled
demo server included. The graph mirrors the classic fixture set:

    user    has_many post, album, todo; has_one profile
    post    belongs_to user; has_many comment
    comment belongs_to post
    album   belongs_to user; has_many photo
    photo   belongs_to album
    todo    belongs_to user

Usage:

    api, err := placeholder.New("http://localhost:4280", nil)
    if err != nil { ... }

    post, err := api.Posts.Find(1)
    if err != nil { ... }
    author, err := post.Related("user")

Declarations land in the process-wide registry, so the last New wins
name lookups when called twice.
*/
package placeholder

import (
	"github.com/activerest/cli/pkg/active"
)

// API bundles the declared collections of one placeholder-style server.
// Profiles is only reachable through users/{id}/profile on the bundled
// demo server; it exists here so has_one results come back typed.
type API struct {
	Posts    *active.Resource
	Comments *active.Resource
	Albums   *active.Resource
	Photos   *active.Resource
	Todos    *active.Resource
	Users    *active.Resource
	Profiles *active.Resource
}

func New(baseURL string, session *active.Session) (*API, error) {
	api := &API{}
	declarations := []struct {
		target **active.Resource
		config active.Config
	}{
		{&api.Users, active.Config{
			Name:    "user",
			HasMany: []string{"post", "album", "todo"},
			HasOne:  "profile",
		}},
		{&api.Profiles, active.Config{Name: "profile"}},
		{&api.Posts, active.Config{
			Name:      "post",
			BelongsTo: "user",
			HasMany:   "comment",
		}},
		{&api.Comments, active.Config{Name: "comment", BelongsTo: "post"}},
		{&api.Albums, active.Config{
			Name:      "album",
			BelongsTo: "user",
			HasMany:   map[string]active.Options{"photo": {}},
		}},
		{&api.Photos, active.Config{Name: "photo", BelongsTo: "album"}},
		{&api.Todos, active.Config{Name: "todo", BelongsTo: "user"}},
	}

	for _, declaration := range declarations {
		declaration.config.URL = baseURL
		declaration.config.Session = session
		resource, err := active.New(declaration.config)
		if err != nil {
			return nil, err
		}
		*declaration.target = resource
	}
	return api, nil
}
