package ngrxgen

// Version is the release version, set at build time with
// -ldflags "-X github.com/Dunsteer/ngrx-essentials-generator.Version=...".
var Version = "0.1.0-dev"
