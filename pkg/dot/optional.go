package dot

import "slices"

// getPtr reads an optional attribute cell.
func getPtr[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// clonePtr copies an optional attribute cell.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// clone copies the style slot and its derived fill-color storage. Style
// values are immutable once constructed, so the nested payloads can be
// shared.
func (a styledAttrs) clone() styledAttrs {
	return styledAttrs{
		style:      clonePtr(a.style),
		fillColors: slices.Clone(a.fillColors),
	}
}
