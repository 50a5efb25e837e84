package config

// Config is the vsalert configuration document.
type Config struct {
	Style   StyleConfig   `yaml:"style,omitempty"`
	Metrics MetricsConfig `yaml:"metrics,omitempty"`
	Alert   *AlertSpec    `yaml:"alert,omitempty"`
}

// StyleConfig sets the process-wide style defaults.
type StyleConfig struct {
	TextColor      string `yaml:"text_color,omitempty" validate:"omitempty,color"`
	TitleTextColor string `yaml:"title_text_color,omitempty" validate:"omitempty,color"`
}

// MetricsConfig overrides composition extents. Unset fields keep their
// defaults; pointer fields distinguish an explicit zero from absence.
type MetricsConfig struct {
	AlertWidth        int  `yaml:"alert_width,omitempty" validate:"omitempty,min=10,max=400"`
	WalkthroughMargin *int `yaml:"walkthrough_margin,omitempty" validate:"omitempty,min=0,max=100"`
	MinWidth          int  `yaml:"min_width,omitempty" validate:"omitempty,min=6,max=400"`
	SlotSpacing       *int `yaml:"slot_spacing,omitempty" validate:"omitempty,min=0,max=10"`
	ActionSpacing     *int `yaml:"action_spacing,omitempty" validate:"omitempty,min=0,max=10"`
	TextFieldHeight   int  `yaml:"text_field_height,omitempty" validate:"omitempty,min=1,max=10"`
	ActionHeight      int  `yaml:"action_height,omitempty" validate:"omitempty,min=1,max=10"`
	MaxImageHeight    *int `yaml:"max_image_height,omitempty" validate:"omitempty,min=0,max=100"`
}

// AlertSpec declares a single dialog.
type AlertSpec struct {
	Title          string       `yaml:"title,omitempty"`
	Description    string       `yaml:"description,omitempty"`
	Image          string       `yaml:"image,omitempty"`
	Style          string       `yaml:"style,omitempty" validate:"omitempty,alert_style"`
	TextColor      string       `yaml:"text_color,omitempty" validate:"omitempty,color"`
	TitleTextColor string       `yaml:"title_text_color,omitempty" validate:"omitempty,color"`
	Actions        []ActionSpec `yaml:"actions,omitempty" validate:"omitempty,dive"`
	TextFields     []FieldSpec  `yaml:"text_fields,omitempty" validate:"omitempty,dive"`
}

// ActionSpec declares one action.
type ActionSpec struct {
	Label string `yaml:"label" validate:"required"`
	Kind  string `yaml:"kind,omitempty" validate:"omitempty,action_kind"`
}

// FieldSpec declares one text field.
type FieldSpec struct {
	Name        string `yaml:"name,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Secure      bool   `yaml:"secure,omitempty"`
	Value       string `yaml:"value,omitempty"`
}
