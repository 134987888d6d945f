package dotmesh

import (
	"fmt"
	"os"
	"strings"
)

// globalDebug enables stderr diagnostics (no sync — dotmesh construction is
// single-threaded; built meshes stay safe for concurrent queries).
var globalDebug bool

// SetDebug toggles stderr diagnostics and debug overlays.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugf prints a diagnostic line to stderr when debugging is enabled.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[dotmesh] "+format+"\n", args...)
}

// DumpMesh renders a mesh's occupancy as rows of '#' and '.', one character
// per pixel, followed by the bounding box. Useful when authoring collision
// nibbles.
func DumpMesh(m Mesh) string {
	if m == nil {
		return "mesh: <none>\n"
	}
	var sb strings.Builder
	sb.WriteString("mesh: {\n")
	for _, row := range meshRows(m) {
		for _, word := range row {
			sb.WriteString(rowString(word))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "}, bbox: %+v\n", m.BBox())
	return sb.String()
}
