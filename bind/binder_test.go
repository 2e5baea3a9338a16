package bind

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonapi/conv"
	"github.com/viant/tagly/format/text"
)

type Color int

const (
	Red  Color = 1
	Blue Color = 2
)

type ArticleHas struct {
	Title     bool
	Rating    bool
	Score     bool
	Published bool
}

type Audit struct {
	Created time.Time `format:"dateFormat=YYYY-MM-DD"`
}

type Article struct {
	Audit
	ID        string
	Title     string
	Rating    int8
	Score     *float64
	Published time.Time
	AuthorID  uuid.UUID `jsonapi:"author-id"`
	Color     Color
	Tags      interface{}
	Owner     fmt.Stringer
	Internal  string      `json:"-"`
	Slug      string      `format:"name=Slug,caseFormat=upperUnderscore"`
	Has       *ArticleHas `setMarker:"true"`
	secret    string
}

func newTestBinder(opts ...Option) *Binder {
	converter := conv.NewConverter(conv.DefaultOptions())
	if err := conv.RegisterEnum(converter, map[Color]string{Red: "Red", Blue: "Blue"}); err != nil {
		panic(err)
	}
	return New(converter, opts...)
}

func TestBinder_Bind(t *testing.T) {
	binder := newTestBinder()
	guid := "6f1c5b0a-2b7e-4f3a-9c1d-0e5a7b8c9d10"
	article := &Article{}
	err := binder.Bind(map[string]interface{}{
		"id":        42,
		"title":     "Hello",
		"rating":    "42",
		"score":     "4.5",
		"published": "2023-01-15T12:30:45Z",
		"created":   "2023-01-14",
		"author-id": guid,
		"color":     "blue",
		"tags":      []string{"go", "api"},
		"SLUG":      "hello",
		"internal":  "ignored",
		"secret":    "ignored",
	}, article)
	require.Nil(t, err)

	assert.Equal(t, "42", article.ID)
	assert.Equal(t, "Hello", article.Title)
	assert.Equal(t, int8(42), article.Rating)
	require.NotNil(t, article.Score)
	assert.Equal(t, 4.5, *article.Score)
	assert.True(t, time.Date(2023, 1, 15, 12, 30, 45, 0, time.UTC).Equal(article.Published))
	assert.True(t, time.Date(2023, 1, 14, 0, 0, 0, 0, time.UTC).Equal(article.Created))
	assert.Equal(t, uuid.MustParse(guid), article.AuthorID)
	assert.Equal(t, Blue, article.Color)
	assert.Equal(t, []string{"go", "api"}, article.Tags)
	assert.Equal(t, "hello", article.Slug)
	assert.Equal(t, "", article.Internal)
	assert.Equal(t, "", article.secret)

	require.NotNil(t, article.Has)
	assert.Equal(t, &ArticleHas{Title: true, Rating: true, Score: true, Published: true}, article.Has)
	assert.True(t, binder.IsBound(article, "title"))
	assert.False(t, binder.IsBound(&Article{Has: &ArticleHas{}}, "title"))
	assert.True(t, binder.IsBound(&Article{}, "title"))
	assert.False(t, binder.IsBound(article, "unknown"))
}

func TestBinder_Bind_Errors(t *testing.T) {
	binder := newTestBinder()

	var testCases = []struct {
		description string
		attributes  map[string]interface{}
		reason      error
	}{
		{description: "out of range", attributes: map[string]interface{}{"rating": 300}, reason: conv.ErrValueOutOfRange},
		{description: "malformed", attributes: map[string]interface{}{"published": "yesterday"}, reason: conv.ErrMalformedInput},
		{description: "unsupported", attributes: map[string]interface{}{"published": 42}, reason: conv.ErrUnsupportedConversion},
		{description: "null", attributes: map[string]interface{}{"rating": nil}, reason: conv.ErrNullValue},
		{description: "not assignable", attributes: map[string]interface{}{"owner": 5}, reason: conv.ErrUnsupportedConversion},
	}

	for _, testCase := range testCases {
		err := binder.Bind(testCase.attributes, &Article{})
		assert.ErrorIs(t, err, testCase.reason, testCase.description)
		for name := range testCase.attributes {
			assert.Contains(t, err.Error(), name, testCase.description)
		}
	}
}

func TestBinder_Bind_Nullable(t *testing.T) {
	binder := newTestBinder()
	score := 1.5
	article := &Article{Score: &score}
	require.Nil(t, binder.Bind(map[string]interface{}{"score": nil, "Title": "case insensitive"}, article))
	assert.Nil(t, article.Score)
	assert.Equal(t, "case insensitive", article.Title)
}

func TestBinder_Bind_Destination(t *testing.T) {
	binder := newTestBinder()
	attributes := map[string]interface{}{"title": "Hello"}
	assert.NotNil(t, binder.Bind(attributes, Article{}))
	assert.NotNil(t, binder.Bind(attributes, (*Article)(nil)))
	assert.NotNil(t, binder.Bind(attributes, nil))
	value := 1
	assert.NotNil(t, binder.Bind(attributes, &value))
}

func TestBinder_Strict(t *testing.T) {
	attributes := map[string]interface{}{"title": "Hello", "unknown": 1}

	assert.Nil(t, newTestBinder().Bind(attributes, &Article{}))

	strict := newTestBinder(WithStrict())
	err := strict.Bind(attributes, &Article{})
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "unknown")
	assert.Equal(t, []string{"unknown"}, strict.TryBind(attributes, &Article{}))
}

func TestBinder_TryBind(t *testing.T) {
	binder := newTestBinder()
	article := &Article{Rating: 7}
	failed := binder.TryBind(map[string]interface{}{
		"title":     "Hello",
		"rating":    "abc",
		"published": "nope",
		"color":     "red",
	}, article)
	assert.Equal(t, []string{"published", "rating"}, failed)
	assert.Equal(t, "Hello", article.Title)
	assert.Equal(t, int8(0), article.Rating)
	assert.Equal(t, Red, article.Color)
	require.NotNil(t, article.Has)
	assert.True(t, article.Has.Title)
	assert.False(t, article.Has.Rating)
	assert.False(t, article.Has.Published)

	assert.Equal(t, []string{"title"}, binder.TryBind(map[string]interface{}{"title": "Hello"}, Article{}))
}

func TestBinder_Options(t *testing.T) {
	type Author struct {
		FirstName string
		LastName  string `attr:"surname"`
		Alias     string `attr:"-"`
	}

	binder := newTestBinder(WithCaseFormat(text.CaseFormatLowerUnderscore), WithTagName("attr"))
	author := &Author{}
	require.Nil(t, binder.Bind(map[string]interface{}{"first_name": "Ada", "surname": "Lovelace", "alias": "x"}, author))
	assert.Equal(t, &Author{FirstName: "Ada", LastName: "Lovelace"}, author)
}

func TestBinder_DuplicateAttribute(t *testing.T) {
	type Duplicated struct {
		Name  string
		Title string `jsonapi:"name"`
	}
	err := newTestBinder().Bind(map[string]interface{}{"name": "x"}, &Duplicated{})
	assert.NotNil(t, err)
}

func TestBinder_Bind_EmbeddedMarker(t *testing.T) {
	type Base struct {
		Title string
	}
	type EntryHas struct {
		Title bool
		Count bool
	}
	type Entry struct {
		Base
		Count int
		Has   *EntryHas `setMarker:"true"`
	}

	binder := newTestBinder()
	entry := &Entry{}
	require.Nil(t, binder.Bind(map[string]interface{}{"title": "x", "count": "3"}, entry))
	assert.Equal(t, "x", entry.Title)
	assert.Equal(t, 3, entry.Count)
	assert.Equal(t, &EntryHas{Title: true, Count: true}, entry.Has)
	assert.True(t, binder.IsBound(entry, "title"))
	assert.True(t, binder.IsBound(entry, "count"))

	entry = &Entry{}
	assert.Equal(t, []string{"count"}, binder.TryBind(map[string]interface{}{"title": "y", "count": "many"}, entry))
	assert.True(t, binder.IsBound(entry, "title"))
	assert.False(t, binder.IsBound(entry, "count"))
}
