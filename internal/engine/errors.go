package engine

import (
	"errors"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
)

func isInstability(err error) bool {
	return errors.Is(err, acoustic.ErrNumericalInstability)
}

// HasWarning reports whether any warning of r matches target.
func (r Record) HasWarning(target error) bool {
	for _, w := range r.Warnings {
		if errors.Is(w, target) {
			return true
		}
	}
	return false
}
