package stats

import (
	"testing"

	"github.com/akutuh/bloglist-api/internal/model"
)

// blogList builds the fixture used across tests. Fields the aggregation
// functions don't look at (IDs, URLs, timestamps) are left zero.
func blogList() []model.Blog {
	return []model.Blog{
		{Title: "React patterns", Author: "Michael Chan", Likes: 7},
		{Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", Likes: 5},
		{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12},
		{Title: "First class tests", Author: "Robert C. Martin", Likes: 10},
		{Title: "TDD harms architecture", Author: "Robert C. Martin", Likes: 0},
		{Title: "Type wars", Author: "Robert C. Martin", Likes: 2},
	}
}

// =========================================================================
// TotalLikes
// =========================================================================

func TestTotalLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []model.Blog
		want  int
	}{
		{"empty list", []model.Blog{}, 0},
		{"nil list", nil, 0},
		{"single blog", []model.Blog{{Author: "A", Likes: 5}}, 5},
		{"all zero likes", []model.Blog{{Likes: 0}, {Likes: 0}, {Likes: 0}}, 0},
		{"full list", blogList(), 36},
		{
			"worked example",
			[]model.Blog{
				{Author: "A", Likes: 5},
				{Author: "A", Likes: 3},
				{Author: "B", Likes: 10},
			},
			18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalLikes(tt.blogs); got != tt.want {
				t.Errorf("TotalLikes() = %d, want %d", got, tt.want)
			}
		})
	}
}

// =========================================================================
// FavoriteBlog
// =========================================================================

func TestFavoriteBlog_UniqueMax(t *testing.T) {
	got := FavoriteBlog(blogList())
	want := Favorite{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12}
	if got != want {
		t.Errorf("FavoriteBlog() = %+v, want %+v", got, want)
	}
}

func TestFavoriteBlog_Empty(t *testing.T) {
	if got := FavoriteBlog(nil); got != (Favorite{}) {
		t.Errorf("FavoriteBlog(nil) = %+v, want zero value", got)
	}
}

func TestFavoriteBlog_SingleBlog(t *testing.T) {
	got := FavoriteBlog([]model.Blog{{Title: "Only one", Author: "A", Likes: 0}})
	want := Favorite{Title: "Only one", Author: "A", Likes: 0}
	if got != want {
		t.Errorf("FavoriteBlog() = %+v, want %+v", got, want)
	}
}

// On a tie, the FIRST blog with the maximum wins — later equal scores
// must not replace the candidate.
func TestFavoriteBlog_TieKeepsFirst(t *testing.T) {
	got := FavoriteBlog([]model.Blog{
		{Title: "first", Author: "A", Likes: 9},
		{Title: "second", Author: "B", Likes: 9},
	})
	if got.Title != "first" {
		t.Errorf("FavoriteBlog() tie winner = %q, want %q", got.Title, "first")
	}
}

// The projection must carry only display fields — a blog with storage
// fields set produces a Favorite without them by construction, which the
// struct type itself guarantees. This test pins the mapping.
func TestFavoriteBlog_ProjectionFields(t *testing.T) {
	got := FavoriteBlog([]model.Blog{{
		ID:     "storage-id",
		Title:  "t",
		Author: "a",
		URL:    "http://example.com",
		Likes:  1,
		UserID: "owner-id",
	}})
	want := Favorite{Title: "t", Author: "a", Likes: 1}
	if got != want {
		t.Errorf("FavoriteBlog() = %+v, want %+v", got, want)
	}
}

// =========================================================================
// MostBlogs
// =========================================================================

func TestMostBlogs(t *testing.T) {
	tests := []struct {
		name  string
		blogs []model.Blog
		want  AuthorBlogs
	}{
		{"empty list", nil, AuthorBlogs{}},
		{"single blog", []model.Blog{{Author: "A"}}, AuthorBlogs{Author: "A", Blogs: 1}},
		{"full list", blogList(), AuthorBlogs{Author: "Robert C. Martin", Blogs: 3}},
		{
			"worked example",
			[]model.Blog{
				{Author: "A", Likes: 5},
				{Author: "A", Likes: 3},
				{Author: "B", Likes: 10},
			},
			AuthorBlogs{Author: "A", Blogs: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MostBlogs(tt.blogs); got != tt.want {
				t.Errorf("MostBlogs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Two authors with two posts each: the author whose first post appears
// first in the input must win. Run it repeatedly — map iteration order is
// randomized, so a broken implementation fails intermittently.
func TestMostBlogs_TieFirstAppearance(t *testing.T) {
	blogs := []model.Blog{
		{Author: "Alice", Likes: 1},
		{Author: "Bob", Likes: 1},
		{Author: "Bob", Likes: 1},
		{Author: "Alice", Likes: 1},
	}
	// Both have 2 posts; Alice appeared first, so she wins the tie.
	for i := 0; i < 20; i++ {
		if got := MostBlogs(blogs); got.Author != "Alice" {
			t.Fatalf("MostBlogs() tie winner = %q, want %q (iteration %d)", got.Author, "Alice", i)
		}
	}
}

// =========================================================================
// MostLikes
// =========================================================================

func TestMostLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []model.Blog
		want  AuthorLikes
	}{
		{"empty list", nil, AuthorLikes{}},
		{"single blog", []model.Blog{{Author: "A", Likes: 4}}, AuthorLikes{Author: "A", Likes: 4}},
		{"full list", blogList(), AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}},
		{
			"worked example",
			[]model.Blog{
				{Author: "A", Likes: 5},
				{Author: "A", Likes: 3},
				{Author: "B", Likes: 10},
			},
			AuthorLikes{Author: "B", Likes: 10},
		},
		{
			"all zero likes picks first author",
			[]model.Blog{
				{Author: "X", Likes: 0},
				{Author: "Y", Likes: 0},
			},
			AuthorLikes{Author: "X", Likes: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MostLikes(tt.blogs); got != tt.want {
				t.Errorf("MostLikes() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMostLikes_TieFirstAppearance(t *testing.T) {
	blogs := []model.Blog{
		{Author: "Early", Likes: 3},
		{Author: "Late", Likes: 6},
		{Author: "Early", Likes: 3},
	}
	// Both total 6; "Early" appeared first.
	for i := 0; i < 20; i++ {
		if got := MostLikes(blogs); got.Author != "Early" {
			t.Fatalf("MostLikes() tie winner = %q, want %q (iteration %d)", got.Author, "Early", i)
		}
	}
}
