package version

import (
	"fmt"
)

// Define jenkins version consts
const (
	Major = 1
	Minor = 0
	Patch = 0
)

var vstr = fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

// String returns the version as major.minor.patch.
func String() string {
	return vstr
}
