package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/st7735-setup/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/st7735-setup/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/st7735-setup/internal/version.Date={{.Date}}
)
