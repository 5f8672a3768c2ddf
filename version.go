package meridian

const unknownVersion = "version unknown"

// Version is set at build time via -ldflags.
var Version = unknownVersion

func IsVersionKnown() bool {
	return Version != unknownVersion
}
