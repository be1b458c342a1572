package util

// nolint:gochecknoglobals
var (
	// Version current version number
	Version = "undefined"
	// BuildTime build time of binary
	BuildTime = "undefined"
)
