// Package autocomplete provides a Bubble Tea email domain autocomplete
// component backed by the suggest package.
//
// The host owns the text field. It forwards every key to Model.Check together
// with the field's current value, forwards pointer and SubmitMsg messages to
// Model.Update, and receives accepted text through Config.OnCompletion.
// Keys for which IsActionKey reports true belong to the component and must not
// reach the host field.
package autocomplete
