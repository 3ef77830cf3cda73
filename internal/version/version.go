// internal/version/version.go
package version

// Version is stamped at build time via
// -ldflags "-X fizzbuzz/internal/version.Version=v1.2.3".
var Version = "dev"
