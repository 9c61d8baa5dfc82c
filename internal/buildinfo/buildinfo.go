package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// EndpointURL is the build-time-injected backend URL. Empty in plain
	// builds; release builds bake it in with -ldflags -X. It takes priority
	// over the stored endpoint setting.
	EndpointURL = ""
)

func String() string {
	return fmt.Sprintf("bimtek %s (commit=%s, date=%s)", Version, Commit, Date)
}
