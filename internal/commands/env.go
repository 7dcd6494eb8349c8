package commands

import (
	"strings"

	"github.com/spf13/viper"
)

// Every generate flag can be seeded from a STRUCTKIT_* environment
// variable. Defaults are resolved once, when the command is built, so
// precedence is simply: explicit flag > environment > hard default.

// newEnv returns a viper instance bound to the STRUCTKIT_* namespace.
func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("STRUCTKIT")
	v.AutomaticEnv()
	return v
}

// envDefault reads key (e.g. "file_strategy" → STRUCTKIT_FILE_STRATEGY),
// treating an empty variable as unset.
func envDefault(v *viper.Viper, key, fallback string) string {
	if s := v.GetString(key); s != "" {
		return s
	}
	return fallback
}

// envBool parses a boolean variable the way the CLI documents it:
// true/1/yes enable, case-insensitive; everything else (including
// empty) is false.
func envBool(v *viper.Viper, key string) bool {
	switch strings.ToLower(v.GetString(key)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
