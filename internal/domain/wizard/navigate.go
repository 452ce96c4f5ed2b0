package wizard

import "slices"

// Direction moves the wizard to a neighbouring record.
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// Neighbor returns the id next to current in ids, wrapping around at both
// ends. It reports false when current is not in ids.
func Neighbor(ids []string, current string, dir Direction) (string, bool) {
	idx := slices.Index(ids, current)
	if idx < 0 {
		return "", false
	}

	switch dir {
	case DirectionPrev:
		idx = (idx - 1 + len(ids)) % len(ids)
	case DirectionNext:
		idx = (idx + 1) % len(ids)
	default:
		return "", false
	}

	return ids[idx], true
}
