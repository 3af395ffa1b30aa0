package swagcodegen

import "fmt"

var (
	// version is set via ldflags at release time.
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// UserAgent returns the User-Agent string sent when fetching remote documents
func UserAgent() string {
	return fmt.Sprintf("swagcodegen/%s", version)
}
