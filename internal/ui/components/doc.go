// Package components provides the lipgloss building blocks used to draw an
// alert dialog in the terminal.
//
// Components render to strings and compose through the ui.Renderable
// interface. Styling comes from an explicit Theme carried in a RenderContext,
// so rendering is deterministic for a given component and context:
//
//	ctx := components.DefaultContext().WithWidth(40)
//	box := components.NewContainer(
//		components.NewText("Delete item?").WithHeight(1),
//		components.VerticalSpacer(1),
//		components.NewButton("Delete").WithVariant(components.ButtonVariantDestructive),
//	).WithBorder(lipgloss.RoundedBorder())
//	output := box.ViewWithContext(ctx)
//
// Text and Button honour a fixed height so a rendered block occupies exactly
// the rows the layout engine reserved for it.
package components
