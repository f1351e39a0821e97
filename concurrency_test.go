package bitvec

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentReaders(t *testing.T) {
	b := Random(4096).Set(70000)

	wantCard, err := b.Cardinality()
	require.NoError(t, err)
	wantMembers, err := b.ToArray()
	require.NoError(t, err)
	wantText := b.String()

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)

	for r := 0; r < 32; r++ {
		g.Go(func() error {
			card, err := b.Cardinality()
			if err != nil {
				return err
			}
			if card != wantCard {
				return fmt.Errorf("cardinality %d, want %d", card, wantCard)
			}

			if msb, _ := b.Msb(); msb != 70000 {
				return fmt.Errorf("msb %d, want 70000", msb)
			}
			if !b.Test(70000) {
				return fmt.Errorf("bit 70000 not set")
			}
			if rank := b.Rank(70000); rank != wantCard {
				return fmt.Errorf("rank %d, want %d", rank, wantCard)
			}

			members, err := b.ToArray()
			if err != nil {
				return err
			}
			if len(members) != len(wantMembers) {
				return fmt.Errorf("%d members, want %d", len(members), len(wantMembers))
			}

			if text := b.String(); text != wantText {
				return fmt.Errorf("text form diverged")
			}

			i := 0
			for j, ok := b.NextSet(0); ok; j, ok = b.NextSet(j + 1) {
				if j != wantMembers[i] {
					return fmt.Errorf("member %d is %d, want %d", i, j, wantMembers[i])
				}
				i++
			}
			if i != wantCard {
				return fmt.Errorf("scan visited %d members, want %d", i, wantCard)
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func TestConcurrentClones(t *testing.T) {
	base := Random(1024)
	snapshot := base.Clone()
	complement := snapshot.Not()

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)

	for r := 0; r < 32; r++ {
		g.Go(func() error {
			c := base.Clone()
			d := c.Not().Lsh(r + 1).Rsh(r + 1)
			if d.IsFinite() {
				return fmt.Errorf("complement of a finite clone must be indefinite")
			}
			if !d.Equal(complement) {
				return fmt.Errorf("shift round-trip by %d diverged from the complement", r+1)
			}
			if !c.Equal(snapshot) {
				return fmt.Errorf("deriving a value mutated the clone")
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.True(t, base.Equal(snapshot))
}
