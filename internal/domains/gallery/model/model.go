package model

import (
	"errors"

	"github.com/lib/pq"
)

const (
	TableName  = "item_galleries"
	EntityName = "item_gallery"

	FieldItemID = "item_id"
	FieldSlots  = "slots"
	FieldOrd    = "ord"

	// MaxImages caps the visible gallery size per item.
	MaxImages = 5
)

var (
	ErrPositionOutOfRange = errors.New("image position out of range")
	ErrGalleryFull        = errors.New("gallery is full")
)

// ItemGallery holds the ordered image references of one item. Slots is the
// physical storage array; Ord maps each visible position to the slot currently
// holding its image. Positions are zero-based and dense. All index arithmetic
// lives in the methods below; callers never touch the arrays directly.
type ItemGallery struct {
	ItemID string         `db:"item_id"`
	Slots  pq.StringArray `db:"slots"`
	Ord    pq.Int64Array  `db:"ord"`
}

func New(itemID string) ItemGallery {
	return ItemGallery{
		ItemID: itemID,
		Slots:  pq.StringArray{},
		Ord:    pq.Int64Array{},
	}
}

// Count returns the visible gallery size.
func (g *ItemGallery) Count() int {
	return len(g.Ord)
}

func (g *ItemGallery) validPosition(pos int) bool {
	return pos >= 0 && pos < len(g.Ord)
}

// RefAt resolves the image reference visible at pos.
func (g *ItemGallery) RefAt(pos int) (string, error) {
	if !g.validPosition(pos) {
		return "", ErrPositionOutOfRange
	}

	return g.Slots[g.Ord[pos]], nil
}

// RefsInOrder returns the visible sequence Slots[Ord[0]], ..., Slots[Ord[n-1]].
func (g *ItemGallery) RefsInOrder() []string {
	refs := make([]string, len(g.Ord))
	for pos, slot := range g.Ord {
		refs[pos] = g.Slots[slot]
	}

	return refs
}

// Append claims the next slot and the next visible position for ref, and
// returns the new position.
func (g *ItemGallery) Append(ref string) (int, error) {
	if len(g.Ord) >= MaxImages {
		return 0, ErrGalleryFull
	}

	slot := int64(len(g.Slots))
	g.Slots = append(g.Slots, ref)
	g.Ord = append(g.Ord, slot)

	return len(g.Ord) - 1, nil
}

// ReplaceAt overwrites the slot visible at pos in place and returns the slot
// index. Ord is untouched, so every other position keeps both its image and
// its physical slot.
func (g *ItemGallery) ReplaceAt(pos int, ref string) (int, error) {
	if !g.validPosition(pos) {
		return 0, ErrPositionOutOfRange
	}

	slot := int(g.Ord[pos])
	g.Slots[slot] = ref

	return slot, nil
}

// DeleteAt removes the image visible at pos: the slot array compacts, the
// order array loses one position, and every surviving order entry pointing
// past the removed slot index shifts down by one. Renumbering goes strictly by
// slot index, not by position.
func (g *ItemGallery) DeleteAt(pos int) error {
	if !g.validPosition(pos) {
		return ErrPositionOutOfRange
	}

	slot := g.Ord[pos]
	g.Slots = append(g.Slots[:slot], g.Slots[slot+1:]...)
	g.Ord = append(g.Ord[:pos], g.Ord[pos+1:]...)

	for i, v := range g.Ord {
		if v > slot {
			g.Ord[i] = v - 1
		}
	}

	return nil
}
