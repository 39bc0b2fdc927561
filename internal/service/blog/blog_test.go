package blog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medreach/hospital_backend/internal/repo"
	"github.com/medreach/hospital_backend/internal/repo/enttest"
)

func newService(t *testing.T) (Service, *repo.Client) {
	t.Helper()

	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	return New(client), client
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Managing Seasonal Allergies", "managing-seasonal-allergies"},
		{"  COVID-19: What's New?  ", "covid-19-what-s-new"},
		{"100% Honest Advice!!!", "100-honest-advice"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := slugify(tt.in); got != tt.want {
				t.Fatalf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreateDerivesUniqueSlug(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	author := uuid.New()

	first, err := svc.Create(ctx, author, CreatePostRequest{
		Title: "Flu Season Tips", Description: "d", Content: "c",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Slug != "flu-season-tips" {
		t.Fatalf("slug = %q, want flu-season-tips", first.Slug)
	}

	second, err := svc.Create(ctx, author, CreatePostRequest{
		Title: "Flu Season Tips", Description: "d", Content: "c",
	})
	if err != nil {
		t.Fatalf("Create duplicate title: %v", err)
	}
	if second.Slug != "flu-season-tips-2" {
		t.Fatalf("slug = %q, want flu-season-tips-2", second.Slug)
	}

	third, err := svc.Create(ctx, author, CreatePostRequest{
		Title: "Flu Season Tips", Description: "d", Content: "c",
	})
	if err != nil {
		t.Fatalf("Create third: %v", err)
	}
	if third.Slug != "flu-season-tips-3" {
		t.Fatalf("slug = %q, want flu-season-tips-3", third.Slug)
	}
}

func TestPublishTimestampSurvivesUnpublish(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, uuid.New(), CreatePostRequest{
		Title: "Draft First", Description: "d", Content: "c",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.Published || post.PublishedAt != nil {
		t.Fatalf("new draft published = %v at %v", post.Published, post.PublishedAt)
	}

	on := true
	post, err = svc.Update(ctx, post.Slug, UpdatePostRequest{Publish: &on})
	if err != nil {
		t.Fatalf("Update publish: %v", err)
	}
	if !post.Published || post.PublishedAt == nil {
		t.Fatal("publish did not set published_at")
	}
	firstPublish := *post.PublishedAt

	off := false
	post, err = svc.Update(ctx, post.Slug, UpdatePostRequest{Publish: &off})
	if err != nil {
		t.Fatalf("Update unpublish: %v", err)
	}
	if post.Published {
		t.Fatal("post still published")
	}
	if post.PublishedAt == nil || !post.PublishedAt.Equal(firstPublish) {
		t.Fatalf("published_at changed on unpublish: %v", post.PublishedAt)
	}

	// Republishing keeps the original timestamp.
	post, err = svc.Update(ctx, post.Slug, UpdatePostRequest{Publish: &on})
	if err != nil {
		t.Fatalf("Update republish: %v", err)
	}
	if !post.PublishedAt.Equal(firstPublish) {
		t.Fatalf("published_at moved on republish: %v", post.PublishedAt)
	}
}

func TestPublicFeedExcludesDrafts(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	author := uuid.New()

	if _, err := svc.Create(ctx, author, CreatePostRequest{
		Title: "Published", Description: "d", Content: "heart health", Publish: true,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, author, CreatePostRequest{
		Title: "Draft", Description: "d", Content: "heart health draft",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	pub, err := svc.ListPublished(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(pub) != 1 || pub[0].Title != "Published" {
		t.Fatalf("ListPublished = %v, want only the published post", pub)
	}

	all, err := svc.ListAll(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListAll = %d posts, want 2", len(all))
	}

	found, err := svc.Search(ctx, "heart", ListRequest{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("Search = %d posts, want 1 (draft hidden)", len(found))
	}

	latest, err := svc.Latest(ctx, 5)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(latest) != 1 {
		t.Fatalf("Latest = %d posts, want 1", len(latest))
	}
}

func TestByAuthorAndStats(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	for i := 0; i < 2; i++ {
		if _, err := svc.Create(ctx, alice, CreatePostRequest{
			Title: fmt.Sprintf("Alice %d", i), Description: "d", Content: "c", Publish: true,
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := svc.Create(ctx, bob, CreatePostRequest{
		Title: "Bob Draft", Description: "d", Content: "c",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	posts, err := svc.ByAuthor(ctx, alice, ListRequest{})
	if err != nil {
		t.Fatalf("ByAuthor: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("ByAuthor = %d posts, want 2", len(posts))
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 3 || stats.Published != 2 || stats.Drafts != 1 || stats.AuthorCount != 2 {
		t.Fatalf("Stats = %+v", stats)
	}
}

func TestDeleteAndNotFound(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, uuid.New(), CreatePostRequest{
		Title: "Going Away", Description: "d", Content: "c",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, post.Slug); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.BySlug(ctx, post.Slug); !errors.Is(err, ErrNotFound) {
		t.Fatalf("BySlug after delete = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, post.Slug); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}
}
