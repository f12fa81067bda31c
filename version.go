package knowling

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version is the released version of knowling.
var Version = strings.TrimSpace(rawVersion)
