package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/medreach/hospital_backend/internal/repo"
	entpost "github.com/medreach/hospital_backend/internal/repo/blogpost"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreatePostRequest struct {
	Title            string
	Description      string
	Content          string
	FeaturedImageKey *string
	Publish          bool
}

type UpdatePostRequest struct {
	Title            *string
	Description      *string
	Content          *string
	FeaturedImageKey *string
	Publish          *bool
}

type ListRequest struct {
	Page    int
	PerPage int
}

type Stats struct {
	Total       int
	Published   int
	Drafts      int
	AuthorCount int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*repo.BlogPost, error)
	Update(ctx context.Context, slug string, req UpdatePostRequest) (*repo.BlogPost, error)
	Delete(ctx context.Context, slug string) error

	// BySlug returns the post regardless of publication state; the public
	// router filters drafts before calling it.
	BySlug(ctx context.Context, slug string) (*repo.BlogPost, error)

	// ListPublished is the public feed, newest first.
	ListPublished(ctx context.Context, req ListRequest) ([]*repo.BlogPost, error)

	// ListAll includes drafts. Admin only.
	ListAll(ctx context.Context, req ListRequest) ([]*repo.BlogPost, error)

	Latest(ctx context.Context, limit int) ([]*repo.BlogPost, error)
	Search(ctx context.Context, query string, req ListRequest) ([]*repo.BlogPost, error)
	ByAuthor(ctx context.Context, authorID uuid.UUID, req ListRequest) ([]*repo.BlogPost, error)
	Stats(ctx context.Context) (*Stats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type blogService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &blogService{db: db}
}

func (s *blogService) Create(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*repo.BlogPost, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	slug, err := s.uniqueSlug(ctx, slugify(req.Title))
	if err != nil {
		return nil, err
	}

	c := s.db.BlogPost.Create().
		SetTitle(req.Title).
		SetSlug(slug).
		SetDescription(strings.TrimSpace(req.Description)).
		SetContent(req.Content).
		SetAuthorID(authorID).
		SetNillableFeaturedImageKey(req.FeaturedImageKey).
		SetPublished(req.Publish)

	if req.Publish {
		c = c.SetPublishedAt(time.Now())
	}

	post, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return post, nil
}

func (s *blogService) Update(ctx context.Context, slug string, req UpdatePostRequest) (*repo.BlogPost, error) {
	post, err := s.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	upd := s.db.BlogPost.UpdateOne(post)

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		upd = upd.SetTitle(title)
		// The slug sticks to the original title so published URLs stay valid.
	}
	if req.Description != nil {
		upd = upd.SetDescription(strings.TrimSpace(*req.Description))
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, fmt.Errorf("%w: content is required", ErrValidation)
		}
		upd = upd.SetContent(*req.Content)
	}
	if req.FeaturedImageKey != nil {
		upd = upd.SetFeaturedImageKey(*req.FeaturedImageKey)
	}
	if req.Publish != nil {
		upd = upd.SetPublished(*req.Publish)
		// published_at marks the first publish and survives unpublishing.
		if *req.Publish && post.PublishedAt == nil {
			upd = upd.SetPublishedAt(time.Now())
		}
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update blog post: %w", err)
	}
	return updated, nil
}

func (s *blogService) Delete(ctx context.Context, slug string) error {
	n, err := s.db.BlogPost.Delete().
		Where(entpost.SlugEQ(slug)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *blogService) BySlug(ctx context.Context, slug string) (*repo.BlogPost, error) {
	post, err := s.db.BlogPost.Query().
		Where(entpost.SlugEQ(slug)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return post, nil
}

func (s *blogService) ListPublished(ctx context.Context, req ListRequest) ([]*repo.BlogPost, error) {
	return s.list(ctx, req, s.db.BlogPost.Query().Where(entpost.Published(true)))
}

func (s *blogService) ListAll(ctx context.Context, req ListRequest) ([]*repo.BlogPost, error) {
	return s.list(ctx, req, s.db.BlogPost.Query())
}

func (s *blogService) Latest(ctx context.Context, limit int) ([]*repo.BlogPost, error) {
	if limit < 1 || limit > 20 {
		limit = 5
	}
	posts, err := s.db.BlogPost.Query().
		Where(entpost.Published(true)).
		Order(entpost.ByPublishedAt(sql.OrderDesc()), entpost.ByID(sql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest blog posts: %w", err)
	}
	return posts, nil
}

func (s *blogService) Search(ctx context.Context, query string, req ListRequest) ([]*repo.BlogPost, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListPublished(ctx, req)
	}
	q := s.db.BlogPost.Query().
		Where(
			entpost.Published(true),
			entpost.Or(
				entpost.TitleContainsFold(query),
				entpost.DescriptionContainsFold(query),
				entpost.ContentContainsFold(query),
			),
		)
	return s.list(ctx, req, q)
}

func (s *blogService) ByAuthor(ctx context.Context, authorID uuid.UUID, req ListRequest) ([]*repo.BlogPost, error) {
	q := s.db.BlogPost.Query().
		Where(
			entpost.Published(true),
			entpost.AuthorID(authorID),
		)
	return s.list(ctx, req, q)
}

func (s *blogService) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.db.BlogPost.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	published, err := s.db.BlogPost.Query().
		Where(entpost.Published(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count published posts: %w", err)
	}

	authors, err := s.db.BlogPost.Query().
		Unique(true).
		Select(entpost.FieldAuthorID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("count authors: %w", err)
	}

	return &Stats{
		Total:       total,
		Published:   published,
		Drafts:      total - published,
		AuthorCount: len(authors),
	}, nil
}

func (s *blogService) list(ctx context.Context, req ListRequest, q *repo.BlogPostQuery) ([]*repo.BlogPost, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	posts, err := q.
		Order(entpost.ByCreatedAt(sql.OrderDesc()), entpost.ByID(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return posts, nil
}
