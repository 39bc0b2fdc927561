package blog

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	entpost "github.com/medreach/hospital_backend/internal/repo/blogpost"
)

// slugify lowercases the title and collapses everything that is not a letter
// or digit into single hyphens.
func slugify(title string) string {
	var b strings.Builder
	prevHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevHyphen = false
		case !prevHyphen:
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// uniqueSlug appends -2, -3, ... until the slug is free.
func (s *blogService) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "post"
	}
	slug := base
	for i := 2; ; i++ {
		exists, err := s.db.BlogPost.Query().
			Where(entpost.SlugEQ(slug)).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
