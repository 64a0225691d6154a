package config

// Flow is a stepper document: the steps of one multi-step process plus
// how it should be laid out.
type Flow struct {
	Version     string     `yaml:"version" validate:"required,semver"`
	Name        string     `yaml:"name" validate:"required,min=1,max=100"`
	Description string     `yaml:"description,omitempty"`
	Layout      Layout     `yaml:"layout,omitempty"`
	Buttons     Buttons    `yaml:"buttons,omitempty"`
	Active      int        `yaml:"active,omitempty" validate:"min=0"`
	Tokens      string     `yaml:"tokens,omitempty"`
	Steps       []StepSpec `yaml:"steps" validate:"required,min=1,dive"`
}

// Layout selects presenters and their options.
type Layout struct {
	Orientation   string `yaml:"orientation,omitempty" validate:"omitempty,oneof=horizontal vertical"`
	Alignment     string `yaml:"alignment,omitempty" validate:"omitempty,oneof=left center"`
	MobileVariant string `yaml:"mobile_variant,omitempty" validate:"omitempty,oneof=dots text progress"`
	// Breakpoint is the narrow viewport threshold in pixels. Zero uses the
	// token table.
	Breakpoint   int  `yaml:"breakpoint,omitempty" validate:"omitempty,min=1"`
	ShowOptional bool `yaml:"show_optional,omitempty"`
	HideActions  bool `yaml:"hide_actions,omitempty"`
}

// Buttons overrides the navigation button captions.
type Buttons struct {
	Back     string `yaml:"back,omitempty" validate:"omitempty,max=24"`
	Next     string `yaml:"next,omitempty" validate:"omitempty,max=24"`
	Continue string `yaml:"continue,omitempty" validate:"omitempty,max=24"`
}

// StepSpec is one step as written in a flow document.
type StepSpec struct {
	Label     string `yaml:"label" validate:"required,step_label"`
	Optional  string `yaml:"optional,omitempty"`
	Completed bool   `yaml:"completed,omitempty"`
	Disabled  bool   `yaml:"disabled,omitempty"`
	Error     bool   `yaml:"error,omitempty"`
	Icon      string `yaml:"icon,omitempty" validate:"omitempty,max=4"`
	// Content is markdown shown in the desktop content slot.
	Content string `yaml:"content,omitempty"`
}
