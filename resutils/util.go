package resutils

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// CheckIndex returns ErrInvalidPath if index does not lie within [0, count)
func CheckIndex[T constraints.Integer](index, count T, name string) error {
	if index < 0 || index >= count {
		return errors.Wrapf(ErrInvalidPath, "%s is %d, must be less than %d", name, index, count)
	}
	return nil
}

// Mask is a set of small non-negative integers, such as controller or engine ids
type Mask uint64

// Has returns true if bit is present in the mask
func (m Mask) Has(bit uint32) bool {
	if bit >= 64 {
		return false
	}
	return m&(1<<bit) != 0
}

// With returns a copy of the mask that includes bit
func (m Mask) With(bit uint32) Mask {
	if bit >= 64 {
		return m
	}
	return m | (1 << bit)
}
