package template

import (
	"fmt"
	"hash/fnv"
)

// GeometryHash returns a stable digest of layer identity, order, and
// geometry. The spatial context map is a pure function of exactly these
// inputs, so the hash keys any variant cache kept by a calling layer:
// a changed hash means cached context maps and variants are stale.
func (t *CardTemplate) GeometryHash() string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%gx%g", t.ID, t.Width, t.Height)
	for i := range t.Layers {
		l := &t.Layers[i]
		fmt.Fprintf(h, "|%d:%s:%s:%g:%g:%g:%g:%g", i, l.ID, l.Type, l.X, l.Y, l.Width, l.Height, l.Rotation)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
