package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGlobalFlags consumes the global flags that precede the subcommand and
// returns the remaining arguments.
func ParseGlobalFlags(args []string) (GlobalFlags, []string, error) {
	var gf GlobalFlags
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--json":
			gf.JSON = true
		case strings.HasPrefix(arg, "--json="):
			v, err := strconv.ParseBool(strings.TrimPrefix(arg, "--json="))
			if err != nil {
				return gf, nil, fmt.Errorf("invalid --json value %q", arg)
			}
			gf.JSON = v
		case arg == "--config-dir":
			if i+1 >= len(args) {
				return gf, nil, fmt.Errorf("--config-dir requires a value")
			}
			i++
			gf.ConfigDir = args[i]
		case strings.HasPrefix(arg, "--config-dir="):
			gf.ConfigDir = strings.TrimPrefix(arg, "--config-dir=")
		case arg == "--log-level":
			if i+1 >= len(args) {
				return gf, nil, fmt.Errorf("--log-level requires a value")
			}
			i++
			gf.LogLevel = args[i]
		case strings.HasPrefix(arg, "--log-level="):
			gf.LogLevel = strings.TrimPrefix(arg, "--log-level=")
		default:
			return gf, args[i:], nil
		}
	}
	return gf, nil, nil
}
