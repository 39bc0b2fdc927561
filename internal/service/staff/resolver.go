package staff

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/medreach/hospital_backend/internal/repo"
	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
)

// Picker chooses an index from a candidate pool. The production picker is
// uniform random; tests inject a deterministic one.
type Picker interface {
	PickN(n int) int
}

type randPicker struct{}

func (randPicker) PickN(n int) int { return rand.IntN(n) }

func DefaultPicker() Picker { return randPicker{} }

// Assign resolves an open slot for the given role by picking uniformly among
// the active candidates. Returns (nil, nil) when no staff is available: the
// request stays unassigned and that is a valid outcome.
func (s *staffService) Assign(ctx context.Context, role entprofile.Role) (*repo.Profile, error) {
	candidates, err := s.ListActive(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("resolve %s assignment: %w", role, err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[s.picker.PickN(len(candidates))], nil
}
