package arclib

import (
	"testing"

	"github.com/activerest/cli/internal/arclib/config"
	"github.com/activerest/cli/pkg/assert"
)

func TestUnderscoreName(t *testing.T) {
	cases := map[string]string{
		"comment":    "comment",
		"Blog Post":  "blog_post",
		"blog-post":  "blog_post",
		"Blog_Post!": "blog_post",
	}
	for input, expected := range cases {
		assert.Equal(t, underscoreName(input), expected)
	}
}

func TestAddCommand(t *testing.T) {
	cfg, _, teardown := beforeCommandTest(t)
	defer teardown()

	err := AddCommand(cfg, &AddCommandArguments{
		Name:      "Blog Vote",
		Path:      "votes",
		BelongsTo: []string{"comment"},
	})
	assert.NoError(t, err)

	// The new section hit the disk
	reloaded, err := config.Load()
	assert.NoError(t, err)
	resource := reloaded.FindResource("blog_vote")
	if resource == nil {
		t.Fatal("The added resource was not saved")
	}
	assert.Equal(t, resource.Path, "votes")
	assert.Equal(t, len(resource.BelongsTo), 1)
	assert.Equal(t, resource.BelongsTo[0].Target, "comment")
}

func TestAddCommandRejectsDuplicate(t *testing.T) {
	cfg, _, teardown := beforeCommandTest(t)
	defer teardown()

	err := AddCommand(cfg, &AddCommandArguments{Name: "post"})
	if err == nil {
		t.Error("Expected an error for an already declared resource")
	}
}

func TestAddCommandRejectsEmptyName(t *testing.T) {
	cfg, _, teardown := beforeCommandTest(t)
	defer teardown()

	err := AddCommand(cfg, &AddCommandArguments{Name: "!!!"})
	if err == nil {
		t.Error("Expected an error for a name without letters")
	}
}
