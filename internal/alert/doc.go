// Package alert implements the composition and layout engine behind a modal
// alert dialog.
//
// A Dialog is built from optional content (title, description, image), a list
// of actions and any number of text fields:
//
//	d := alert.Create("Delete item?", "This cannot be undone.", nil, alert.StyleAlert)
//	d.AddAction(alert.NewAction("Cancel", alert.KindCancel, nil))
//	d.AddAction(alert.NewAction("Delete", alert.KindDestructive, deleteItem))
//	if err := d.Present(host); err != nil {
//		return err
//	}
//
// Presentation resolves colors through the style cascade, orders the actions
// (default, then destructive, then cancel) and composes a Layout that the Host
// renders. Colors are resolved when Present runs, never at construction, so
// changes made to the process-wide Defaults before presentation are honoured
// and later changes leave an already presented dialog untouched.
//
// All Dialog methods must be called from the goroutine that owns the Host.
package alert
