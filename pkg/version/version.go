package version

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/idealday/idr/pkg/version.Version=...".
var Version = "dev"
