package com

import (
	"fmt"

	"github.com/google/uuid"
)

// Identity is an opaque, globally addressable mailbox endpoint. It is a small
// value, copied freely; two identities are equal iff they were allocated by
// the same NewIdentity call. The zero Identity is not addressable.
type Identity struct {
	id   uuid.UUID
	name string
}

// Name returns the human readable name given at allocation.
func (i Identity) Name() string { return i.name }

// IsZero reports whether the identity has not been allocated.
func (i Identity) IsZero() bool { return i.id == uuid.Nil }

// String renders the name together with a short unique suffix.
func (i Identity) String() string {
	if i.IsZero() {
		return "<nil identity>"
	}
	return fmt.Sprintf("%s(%s)", i.name, i.id.String()[:8])
}
