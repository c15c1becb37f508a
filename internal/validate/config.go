// Package validate provides configuration validation utilities for hiserve
// components.
//
// This file implements common validation patterns shared by the daemon and
// CLI config packages. All functions leverage the go-playground/validator
// library for standardized validation behavior instead of scattering manual
// checks across config code.
package validate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidatePortRange validates that a port number is within the valid range (1-65535).
// Rejects port 0 (OS-assigned) since the access URLs printed at startup and
// embedded in receiver docs require a predictable port.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateRequiredString validates that a string field is not empty.
// Prevents runtime failures from missing essential configuration parameters
// like the root directory or index filename.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateIndexFilename validates that an index filename is a bare file name
// without path separators or traversal components. The index file must live
// in the serving root; allowing "../secret.html" here would let the rewrite
// rule serve files from outside the root.
func ValidateIndexFilename(name string) error {
	if err := ValidateRequiredString(name, "index filename"); err != nil {
		return err
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("index filename '%s' must not contain path separators", name)
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("index filename '%s' must be a plain file name", name)
	}

	return nil
}
