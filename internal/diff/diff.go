// Package diff writes rendered output as a unified patch against the file it
// would replace, so changes can be reviewed and applied with git apply.
package diff

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// Extension every patch file must carry.
const Extension = ".diff"

// Validate checks that path is a usable patch file location.
func Validate(path string) error {
	if filepath.Ext(path) != Extension {
		return fmt.Errorf("output file must have a %s extension", Extension)
	}

	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("output file directory does not exist: %v", err)
	}

	return nil
}

// Create validates path and truncates or creates the patch file.
func Create(path string) error {
	if err := Validate(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return f.Close()
}

// Append adds the patch turning original into modified to the patch file at
// path. name is how the target is labelled in the patch, relative to the
// directory the patch will be applied from.
func Append(path, name, original, modified string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	patch := godiffpatch.GeneratePatch(name, original, modified)
	if _, err := f.WriteString(patch); err != nil {
		return err
	}
	return nil
}

// Label returns target relative to root, as written in patch headers. It
// falls back to the base name when target is outside root.
func Label(root, target string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, absTarget)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(target), nil
	}
	return filepath.ToSlash(rel), nil
}
