package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Resolution defaults
	v.SetDefault("resolve.metadata_prefix", "")
	v.SetDefault("resolve.fail_on_collision", false)

	// Output defaults
	v.SetDefault("output.format", "text")
	v.SetDefault("output.log_theme", "everforest")
}
