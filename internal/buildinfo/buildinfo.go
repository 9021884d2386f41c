package buildinfo

// Version, Commit and Date are set at build time via -ldflags, e.g.
//
//	go build -ldflags "-X glowfield/internal/buildinfo.Version=v0.3.0"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String returns every known build field.
func String() string {
	return Short() + " commit=" + Commit + " date=" + Date
}
