package resolve

import (
	"errors"
	"fmt"
)

// ErrIntegrity is the sentinel every model-integrity fault unwraps to.
var ErrIntegrity = errors.New("model integrity fault")

// IntegrityError reports a required reference that resolves in no namespace.
type IntegrityError struct {
	// Kind names what was being resolved, e.g. "executable".
	Kind string
	// Ref is the unresolved identifier.
	Ref string
	// Namespaces lists the element kinds that were searched.
	Namespaces []string
}

// Error implements the error interface for IntegrityError.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s %q not found (searched %v)", ErrIntegrity, e.Kind, e.Ref, e.Namespaces)
}

// Unwrap lets errors.Is match ErrIntegrity.
func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}
