package version

// Version is the application version, overridden at build time with
// -ldflags "-X github.com/alcast/backoffice/internal/version.Version=...".
var Version = "dev"
