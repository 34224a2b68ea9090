/*
Package active
Declarative mapping of REST API collections onto in-memory records, the
object-relational-mapper way but over HTTP.

Usage:

    import "github.com/activerest/cli/pkg/active"

    authors, err := active.New(active.Config{Name: "author"})
    posts, err := active.New(active.Config{
        Name:      "post",
        URL:       "https://api.example.com",
        BelongsTo: "author",
        HasMany:   "comment",
    })

    // Collections
    all, err := posts.All()
    drafts, err := posts.Where(active.Fields{"status": "draft"})
    post, err := posts.Find(7)
    post, err = posts.Create(active.Fields{"title": "Hello"})

    // Records
    post.Fields["title"] = "Hello again"
    err = post.Save()
    err = post.Update(active.Fields{"status": "published"})
    err = post.Destroy()

    // Associations
    author, err := post.Related("author")        // GET authors/:author_id
    comments, err := post.Collection("comments") // scoped to posts/7/comments
    recent, err := comments.All()

Relationship targets are plain names, looked up in a process-wide registry
the first time the association is accessed. Resources can therefore be
declared in any order and refer to each other circularly; a target that is
still missing at access time is a ResolutionError. See Config for the
declaration options and the three accepted declaration shapes.
*/
package active
