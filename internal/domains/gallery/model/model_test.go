package model_test

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"hippo/internal/domains/gallery/model"
)

func TestItemGallery_Append(t *testing.T) {
	g := model.New("item-1")

	refs := []string{"a", "b", "c"}
	for i, ref := range refs {
		pos, err := g.Append(ref)

		assert.NoError(t, err)
		assert.Equal(t, i, pos)
		assert.Equal(t, i+1, g.Count())

		got, err := g.RefAt(pos)
		assert.NoError(t, err)
		assert.Equal(t, ref, got)
	}

	assert.Equal(t, []string{"a", "b", "c"}, g.RefsInOrder())
}

func TestItemGallery_AppendFull(t *testing.T) {
	g := model.New("item-1")

	for i := 0; i < model.MaxImages; i++ {
		_, err := g.Append("ref")
		assert.NoError(t, err)
	}

	_, err := g.Append("one-too-many")

	assert.ErrorIs(t, err, model.ErrGalleryFull)
	assert.Equal(t, model.MaxImages, g.Count())
}

func TestItemGallery_ReplaceAt(t *testing.T) {
	g := model.New("item-1")
	for _, ref := range []string{"a", "b", "c"} {
		_, _ = g.Append(ref)
	}

	slot, err := g.ReplaceAt(1, "b2")

	assert.NoError(t, err)
	assert.Equal(t, 1, slot)
	assert.Equal(t, 3, g.Count())

	// every other position is untouched
	assert.Equal(t, []string{"a", "b2", "c"}, g.RefsInOrder())
}

func TestItemGallery_ReplaceAtSingle(t *testing.T) {
	g := model.New("item-1")
	_, _ = g.Append("a")

	_, err := g.ReplaceAt(0, "a2")

	assert.NoError(t, err)
	assert.Equal(t, 1, g.Count())

	got, err := g.RefAt(0)
	assert.NoError(t, err)
	assert.Equal(t, "a2", got)
}

func TestItemGallery_DeleteAt(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want []string
	}{
		{name: "delete first", pos: 0, want: []string{"b", "c"}},
		{name: "delete middle", pos: 1, want: []string{"a", "c"}},
		{name: "delete last", pos: 2, want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := model.New("item-1")
			for _, ref := range []string{"a", "b", "c"} {
				_, _ = g.Append(ref)
			}

			err := g.DeleteAt(tt.pos)

			assert.NoError(t, err)
			assert.Equal(t, 2, g.Count())
			assert.Equal(t, tt.want, g.RefsInOrder())
		})
	}
}

func TestItemGallery_DeleteAtRenumbering(t *testing.T) {
	// positions before the deleted one stay put, later ones shift down by one
	g := model.New("item-1")
	for _, ref := range []string{"a", "b", "c", "d"} {
		_, _ = g.Append(ref)
	}

	err := g.DeleteAt(1)
	assert.NoError(t, err)

	got, err := g.RefAt(0)
	assert.NoError(t, err)
	assert.Equal(t, "a", got)

	got, err = g.RefAt(1)
	assert.NoError(t, err)
	assert.Equal(t, "c", got)

	got, err = g.RefAt(2)
	assert.NoError(t, err)
	assert.Equal(t, "d", got)

	_, err = g.RefAt(3)
	assert.ErrorIs(t, err, model.ErrPositionOutOfRange)
}

func TestItemGallery_DeleteAtPermutedOrder(t *testing.T) {
	// renumbering must go by slot index, not by visible position, so it has
	// to survive an order array that is not the identity permutation
	g := model.ItemGallery{
		ItemID: "item-1",
		Slots:  pq.StringArray{"a", "b", "c"},
		Ord:    pq.Int64Array{2, 0, 1}, // visible order: c, a, b
	}

	err := g.DeleteAt(1) // removes "a", stored in slot 0

	assert.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, g.RefsInOrder())
}

func TestItemGallery_Boundaries(t *testing.T) {
	g := model.New("item-1")
	_, _ = g.Append("a")
	_, _ = g.Append("b")

	tests := []struct {
		name string
		pos  int
	}{
		{name: "negative position", pos: -1},
		{name: "position equals count", pos: 2},
		{name: "position beyond count", pos: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.RefAt(tt.pos)
			assert.ErrorIs(t, err, model.ErrPositionOutOfRange)

			_, err = g.ReplaceAt(tt.pos, "x")
			assert.ErrorIs(t, err, model.ErrPositionOutOfRange)

			err = g.DeleteAt(tt.pos)
			assert.ErrorIs(t, err, model.ErrPositionOutOfRange)

			// failed operations leave the gallery untouched
			assert.Equal(t, []string{"a", "b"}, g.RefsInOrder())
		})
	}
}

func TestItemGallery_Scenario(t *testing.T) {
	g := model.New("item-1")

	pos, err := g.Append("a")
	assert.NoError(t, err)
	assert.Equal(t, 0, pos)

	pos, err = g.Append("b")
	assert.NoError(t, err)
	assert.Equal(t, 1, pos)

	pos, err = g.Append("c")
	assert.NoError(t, err)
	assert.Equal(t, 2, pos)

	assert.Equal(t, []string{"a", "b", "c"}, g.RefsInOrder())

	err = g.DeleteAt(0)
	assert.NoError(t, err)

	assert.Equal(t, []string{"b", "c"}, g.RefsInOrder())

	got, err := g.RefAt(0)
	assert.NoError(t, err)
	assert.Equal(t, "b", got)

	got, err = g.RefAt(1)
	assert.NoError(t, err)
	assert.Equal(t, "c", got)

	_, err = g.RefAt(2)
	assert.ErrorIs(t, err, model.ErrPositionOutOfRange)
}
