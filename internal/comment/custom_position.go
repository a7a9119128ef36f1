package comment

import (
	"path/filepath"
	"strconv"
	"strings"
)

// getPosition creates a human readable string representing a position in
// the generated output. In order to improve readability, the filename will
// be localized to appRoot when it is inside it.
// The format of the string is as follows based on the positional info available:
//
// Info 			|	Formatting
// ------------------------------------------------
// filename, line	|	filename:line
// filename			|	filename
// line				|	line N
// nothing			|	""
func getPosition(filename string, line int, appRoot string) string {
	if filename != "" && appRoot != "" {
		if rel, err := filepath.Rel(appRoot, filename); err == nil && !strings.HasPrefix(rel, "..") {
			filename = rel
		}
	}

	switch {
	case filename != "" && line > 0:
		return filename + ":" + strconv.Itoa(line)
	case filename != "":
		return filename
	case line > 0:
		return "line " + strconv.Itoa(line)
	default:
		return ""
	}
}
