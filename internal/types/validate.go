package types

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks the structural invariants of a ResumeData: non-empty
// name, at least one entry in every non-optional group, valid email format
// when present, and ordinal levels restricted to their scales.
func (r *ResumeData) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("resume validation failed: %w", err)
	}
	return nil
}
