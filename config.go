package pagemd

// DefaultOutputDir is where converted pages land when neither the CLI nor
// a config file names an output location.
const DefaultOutputDir = "output"

// Config carries optional settings loaded from a YAML config file. The
// zero value is valid and means "use built-in defaults".
type Config struct {
	// OutputDir overrides the default output directory. Relative paths
	// are resolved against the working directory.
	OutputDir string `yaml:"output_dir"`

	// StripSelectors are extra CSS selectors removed from every page
	// before content extraction, on top of the built-in strip list.
	StripSelectors []string `yaml:"strip_selectors"`

	// ContentSelectors are extra CSS selectors tried after the built-in
	// content candidates when locating the main content region.
	ContentSelectors []string `yaml:"content_selectors"`
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	for _, sel := range c.StripSelectors {
		if sel == "" {
			return Errorf(EINVALID, "strip selector cannot be empty")
		}
	}
	for _, sel := range c.ContentSelectors {
		if sel == "" {
			return Errorf(EINVALID, "content selector cannot be empty")
		}
	}
	return nil
}

// ConfigLoader loads converter settings from a file.
type ConfigLoader interface {
	// LoadConfig reads and validates the config file at path.
	// Returns ENOTFOUND if the file does not exist.
	LoadConfig(path string) (*Config, error)
}
