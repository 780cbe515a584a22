package template

// Clone returns a deep copy of the template. Theming never mutates its
// input; the applier edits a clone. The copy is explicit and typed rather
// than a serialization round-trip, so every field survives.
func (t *CardTemplate) Clone() *CardTemplate {
	if t == nil {
		return nil
	}

	out := *t
	out.Layers = make([]Layer, len(t.Layers))
	copy(out.Layers, t.Layers)
	return &out
}
