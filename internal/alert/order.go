package alert

import "slices"

// OrderActions returns the actions in presentation order: default actions
// first, then destructive, then cancel. Actions of the same kind keep their
// registration order. The input slice is not modified.
func OrderActions(actions []*Action) []*Action {
	ordered := slices.Clone(actions)
	slices.SortStableFunc(ordered, func(a, b *Action) int {
		return kindRank(a.kind) - kindRank(b.kind)
	})
	return ordered
}

func kindRank(k Kind) int {
	switch k {
	case KindDefault:
		return 0
	case KindDestructive:
		return 1
	case KindCancel:
		return 2
	default:
		// unknown kinds sort with defaults
		return 0
	}
}
