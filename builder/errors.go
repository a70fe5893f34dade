// File: errors.go
package builder

import "fmt"

// builderErrorf wraps err with a method-name prefix, mirroring the
// teacher's own builderErrorf convention.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("builder.%s: %w", method, err)
}
