package ui

// Renderable is anything that can draw itself as terminal text.
type Renderable interface {
	View() string
}
