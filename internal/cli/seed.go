package cli

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/julianstephens/habitlog/internal/seed"
	"github.com/julianstephens/habitlog/internal/validation"
)

type SeedCmd struct {
	Seed int64 `help:"Random seed; 0 picks one from the clock." default:"0"`
}

func (c *SeedCmd) Run(ctx *Context) error {
	s := uint64(c.Seed)
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(s, s>>32))

	res, err := seed.Run(ctx.Store, rng, validation.Today())
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	fmt.Fprintf(ctx.out(), "✓ Seeded %d habits and %d records.\n", res.Habits, res.Records)
	return nil
}
