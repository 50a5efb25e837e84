package alert

// FieldDelegate observes a text field. Assigning a delegate is optional.
type FieldDelegate interface {
	FieldChanged(field TextField)
	FieldSubmitted(field TextField)
}

// TextField is the handle given to text field configurators. The control
// behind it is owned by the Host.
type TextField interface {
	Placeholder() string
	SetPlaceholder(placeholder string)
	Secure() bool
	SetSecure(secure bool)
	Delegate() FieldDelegate
	SetDelegate(delegate FieldDelegate)
	Value() string
	SetValue(value string)
}

// FieldConfigurator customizes a freshly created text field.
type FieldConfigurator func(field TextField)

// MemoryField is a TextField that only stores its state. It backs text fields
// when a Host does not create its own controls.
type MemoryField struct {
	placeholder string
	secure      bool
	delegate    FieldDelegate
	value       string
}

// NewMemoryField returns a field with no placeholder, no value and secure
// entry off.
func NewMemoryField() *MemoryField {
	return &MemoryField{}
}

func (f *MemoryField) Placeholder() string { return f.placeholder }
func (f *MemoryField) SetPlaceholder(placeholder string) { f.placeholder = placeholder }
func (f *MemoryField) Secure() bool { return f.secure }
func (f *MemoryField) SetSecure(secure bool) { f.secure = secure }
func (f *MemoryField) Delegate() FieldDelegate { return f.delegate }
func (f *MemoryField) SetDelegate(delegate FieldDelegate) { f.delegate = delegate }
func (f *MemoryField) Value() string { return f.value }

// SetValue stores value and notifies the delegate when it changed.
func (f *MemoryField) SetValue(value string) {
	if f.value == value {
		return
	}
	f.value = value
	if f.delegate != nil {
		f.delegate.FieldChanged(f)
	}
}
