package pointers

import "github.com/google/uuid"

func Float64(v float64) *float64 { return &v }
func Int(v int) *int             { return &v }
func Bool(v bool) *bool          { return &v }
func String(v string) *string    { return &v }

// UUIDEqual treats two nil pointers as equal.
func UUIDEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
