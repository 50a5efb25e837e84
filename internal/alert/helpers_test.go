package alert

type fakeHost struct {
	width, height int
	shown         []*Layout
	hidden        int
	showErr       error
	created       int
}

func newFakeHost(width, height int) *fakeHost {
	return &fakeHost{width: width, height: height}
}

func (h *fakeHost) Viewport() (int, int) { return h.width, h.height }

func (h *fakeHost) NewTextField() TextField {
	h.created++
	return NewMemoryField()
}

func (h *fakeHost) Show(_ *Dialog, layout *Layout) error {
	if h.showErr != nil {
		return h.showErr
	}
	h.shown = append(h.shown, layout)
	return nil
}

func (h *fakeHost) Hide(*Dialog) { h.hidden++ }

func kindsOf(actions []*Action) []Kind {
	kinds := make([]Kind, 0, len(actions))
	for _, a := range actions {
		kinds = append(kinds, a.Kind())
	}
	return kinds
}

func labelsOf(actions []*Action) []string {
	labels := make([]string, 0, len(actions))
	for _, a := range actions {
		labels = append(labels, a.Label())
	}
	return labels
}
