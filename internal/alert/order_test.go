package alert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderActionsIsStableByKind(t *testing.T) {
	t.Parallel()

	cancel := NewAction("Cancel", KindCancel, nil)
	first := NewAction("First", KindDefault, nil)
	destroy := NewAction("Delete", KindDestructive, nil)
	second := NewAction("Second", KindDefault, nil)
	input := []*Action{cancel, first, destroy, second}

	ordered := OrderActions(input)

	require.Equal(t, []Kind{KindDefault, KindDefault, KindDestructive, KindCancel}, kindsOf(ordered))
	require.Equal(t, []string{"First", "Second", "Delete", "Cancel"}, labelsOf(ordered))
	require.Equal(t, []*Action{cancel, first, destroy, second}, input, "input must keep registration order")
}

func TestOrderActionsEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, OrderActions(nil))
}

func TestOrderActionsKeepsMultipleCancelsInOrder(t *testing.T) {
	t.Parallel()

	a := NewAction("Close", KindCancel, nil)
	b := NewAction("Dismiss", KindCancel, nil)
	c := NewAction("Retry", KindDefault, nil)

	require.Equal(t, []string{"Retry", "Close", "Dismiss"}, labelsOf(OrderActions([]*Action{a, b, c})))
}
