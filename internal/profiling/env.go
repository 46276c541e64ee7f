package profiling

import (
	"os"

	"github.com/snonux/ecat/internal/config"
)

// FromEnv builds a profiling config from ECAT_ environment variables.
// ECAT_PROFILE=yes enables both CPU and memory profiling, ECAT_CPU_PROFILE
// and ECAT_MEM_PROFILE enable them individually. ECAT_PROFILE_DIR overrides
// the profile output directory.
func FromEnv(commandName string) Config {
	all := config.Env("ECAT_PROFILE")

	cfg := Config{
		CPUProfile:  all || config.Env("ECAT_CPU_PROFILE"),
		MemProfile:  all || config.Env("ECAT_MEM_PROFILE"),
		ProfileDir:  os.Getenv("ECAT_PROFILE_DIR"),
		CommandName: commandName,
	}
	if cfg.ProfileDir == "" {
		cfg.ProfileDir = "profiles"
	}

	return cfg
}
