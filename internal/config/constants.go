package config

// Ad copy limits (characters, not rendered width).
const (
	HeadlineLimit    = 30
	DescriptionLimit = 90
	PathLimit        = 15

	// MaxFieldLength caps raw input length. Fields may exceed their ad
	// limit so counters can show the overrun, but not without bound.
	MaxFieldLength = 160
)

// Application settings.
const (
	AppName         = "adproof"
	DefaultHost     = "www.example.com"
	ConfigFileName  = "config.toml"
	ExampleFileName = "examples.toml"
)
