package class

import (
	"errors"
	"fmt"

	"github.com/MinusGix/RhoJVM/id"
)

// Constant pool index errors. Each names exactly which link in a two-step
// resolution chain broke, so diagnostics can say which part of the file is
// corrupt. They signal a malformed class file; retrying the lookup would
// reproduce the identical failure.
var (
	ErrInvalidThisClassIndex      = errors.New("this-class constant pool index does not resolve to a class entry")
	ErrInvalidThisClassNameIndex  = errors.New("this-class name index does not resolve to a UTF-8 entry")
	ErrInvalidSuperClassIndex     = errors.New("super-class constant pool index does not resolve to a class entry")
	ErrInvalidSuperClassNameIndex = errors.New("super-class name index does not resolve to a UTF-8 entry")
)

// BadIDError reports an id that was never issued by the registry instance
// asked to resolve it.
type BadIDError struct {
	ID id.ClassID
}

func (e *BadIDError) Error() string {
	return fmt.Sprintf("class id %d was not issued by this registry", e.ID.Get())
}
