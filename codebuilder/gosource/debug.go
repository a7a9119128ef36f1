package gosource

import (
	"strings"

	"github.com/dave/dst"
)

// Dump pretty prints the DST structure of node, skipping nil fields. It is
// meant for inspecting what a rendered file parsed into.
func Dump(node dst.Node) (string, error) {
	sb := strings.Builder{}
	if err := dst.Fprint(&sb, node, dst.NotNilFilter); err != nil {
		return "", err
	}
	return sb.String(), nil
}
