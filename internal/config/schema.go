package config

// Config is the top-level biblioctl configuration.
type Config struct {
	Library  LibraryConfig  `mapstructure:"library"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// LibraryConfig locates the catalog file on disk.
type LibraryConfig struct {
	Path string `mapstructure:"path"`
}

// DefaultsConfig holds default values for query commands.
type DefaultsConfig struct {
	Access    string `mapstructure:"access"`     // borrow, reference, or any
	BenchSize int    `mapstructure:"bench_size"` // synthetic catalog size for bench
}
