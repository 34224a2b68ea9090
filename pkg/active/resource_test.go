package active

import (
	"errors"
	"testing"
)

func TestNewAppliesDefaults(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	comments, err := New(Config{Name: "comment"})
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		getter   func() any
		expected any
	}{
		{"name", func() any { return comments.Name }, "comment"},
		{"path", func() any { return comments.Path }, "comments"},
		{"uid", func() any { return comments.UID }, "id"},
		{"url", func() any { return comments.URL }, "http://localhost"},
		{"session", func() any { return comments.Session }, DefaultSession},
	}
	for _, testCase := range testCases {
		value := testCase.getter()
		if value != testCase.expected {
			t.Errorf("default %s was '%v', expected '%v'",
				testCase.name, value, testCase.expected)
		}
	}
}

func TestNewRequiresName(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected an error for a declaration without a name")
	}
}

func TestNewKeepsOverrides(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	session := &Session{}
	books, err := New(Config{
		Name:    "book",
		Path:    "library/books",
		UID:     "isbn",
		URL:     "https://api.example.com",
		Session: session,
	})
	if err != nil {
		t.Fatal(err)
	}
	if books.Path != "library/books" || books.UID != "isbn" ||
		books.URL != "https://api.example.com" || books.Session != session {
		t.Errorf("overrides were not kept: %+v", books)
	}
}

func TestSingleNameShape(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	comments, err := New(Config{
		Name:      "comment",
		BelongsTo: "author",
		HasOne:    "signature",
		HasMany:   "vote",
	})
	if err != nil {
		t.Fatal(err)
	}

	relations := comments.Relations()
	testCases := []struct {
		accessor string
		kind     int
	}{
		{"author", BELONGS_TO},
		{"signature", HAS_ONE},
		{"votes", HAS_MANY},
	}
	for _, testCase := range testCases {
		kind, exists := relations[testCase.accessor]
		if !exists {
			t.Errorf("accessor '%s' was not installed", testCase.accessor)
			continue
		}
		if kind != testCase.kind {
			t.Errorf("accessor '%s' has kind %d, expected %d",
				testCase.accessor, kind, testCase.kind)
		}
	}
}

func TestSetShape(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	posts, err := New(Config{
		Name:    "post",
		HasMany: []string{"comment", "vote"},
	})
	if err != nil {
		t.Fatal(err)
	}

	relations := posts.Relations()
	for _, accessor := range []string{"comments", "votes"} {
		if _, exists := relations[accessor]; !exists {
			t.Errorf("accessor '%s' was not installed", accessor)
		}
	}
}

func TestMappingShape(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	posts, err := New(Config{
		Name: "post",
		HasMany: map[string]Options{
			"comment": {Name: "replies"},
			"vote":    {},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	relations := posts.Relations()
	if _, exists := relations["replies"]; !exists {
		t.Error("the Name option did not rename the accessor")
	}
	if _, exists := relations["comments"]; exists {
		t.Error("the default accessor survived a Name override")
	}
	if _, exists := relations["votes"]; !exists {
		t.Error("the optionless mapping entry lost its default accessor")
	}
}

func TestSingleNameShapeClassOptions(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	comments, err := New(Config{
		Name:          "comment",
		BelongsTo:     "author",
		BelongsToName: "Writer",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, exists := comments.Relations()["writer"]; !exists {
		t.Error("BelongsToName was not applied (underscored) to the accessor")
	}
}

func TestDirectReferenceShape(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	authors, err := New(Config{Name: "author"})
	if err != nil {
		t.Fatal(err)
	}
	comments, err := New(Config{Name: "comment", BelongsTo: authors})
	if err != nil {
		t.Fatal(err)
	}
	if _, exists := comments.Relations()["author"]; !exists {
		t.Error("a direct *Resource target did not install its accessor")
	}
}

func TestShapeError(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	testCases := []struct {
		name   string
		config Config
		kind   string
	}{
		{"number", Config{Name: "post", BelongsTo: 42}, "belongs_to"},
		{"map of strings",
			Config{Name: "post", HasOne: map[string]string{"a": "b"}},
			"has_one"},
		{"slice of any",
			Config{Name: "post", HasMany: []any{"comment"}},
			"has_many"},
	}
	for _, testCase := range testCases {
		_, err := New(testCase.config)
		if err == nil {
			t.Errorf("%s: expected a ShapeError at declaration time",
				testCase.name)
			continue
		}
		var shapeError *ShapeError
		if !errors.As(err, &shapeError) {
			t.Errorf("%s: got %T, expected a ShapeError", testCase.name, err)
			continue
		}
		if shapeError.Kind != testCase.kind {
			t.Errorf("%s: ShapeError names kind '%s', expected '%s'",
				testCase.name, shapeError.Kind, testCase.kind)
		}
	}

	// A failed declaration must not register anything.
	if _, exists := Resolve("post"); exists {
		t.Error("a declaration that failed with a ShapeError was registered")
	}
}

func TestForwardReferenceDeclaration(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	// "author" is not declared yet; the declaration itself must not care.
	comments, err := New(Config{Name: "comment", BelongsTo: "author"})
	if err != nil {
		t.Fatal(err)
	}
	if _, exists := comments.Relations()["author"]; !exists {
		t.Error("forward reference did not install its accessor")
	}
}
