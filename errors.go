package fieldset

import (
	"errors"
	"fmt"
)

// DuplicateKeyError reports an attempt to register two rules under the same
// key in one RuleSet. It indicates a configuration bug; the colliding rule is
// never added.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("Duplicate validation rule detected for key %q", e.Key)
}

// FrozenError reports a mutation attempt on a frozen ResultSet. The set is
// unchanged; construct a new ResultSet instead.
type FrozenError struct {
	// Key is the key of the result whose addition was rejected.
	Key string
}

func (e *FrozenError) Error() string {
	return fmt.Sprintf("fieldset: result set is frozen; cannot add result for key %q", e.Key)
}

// AsDuplicateKey extracts a *DuplicateKeyError using errors.As internally.
func AsDuplicateKey(err error) (*DuplicateKeyError, bool) {
	var de *DuplicateKeyError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// AsFrozen extracts a *FrozenError using errors.As internally.
func AsFrozen(err error) (*FrozenError, bool) {
	var fe *FrozenError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
