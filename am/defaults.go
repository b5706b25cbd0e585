package am

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "lattix.db")

	// Log defaults
	v.SetDefault("log.theme", "everforest")
	v.SetDefault("log.json", false)
}
