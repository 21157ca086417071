package common

type PrintOptions struct {
	Format            string `yaml:"option-format,omitempty"`
	Indent            int    `yaml:"option-indent,omitempty"`
	TrimValueOnOutput int    `yaml:"option-trim-value-on-output,omitempty"`
	ShowPositions     bool   `yaml:"option-show-positions,omitempty"`
}
