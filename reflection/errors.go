// Package reflection binds embedded class metadata records to a live type
// system and produces method, constructor and field handles from them.
//
// Lookups that find nothing return nil; only malformed descriptors and
// registry failures are reported as errors.
package reflection

import "errors"

// Sentinel errors.
var (
	// ErrClassNotFound indicates the registry has no class of the given name.
	ErrClassNotFound = errors.New("reflection: class not found")

	// ErrDuplicateClass indicates a class name defined twice.
	ErrDuplicateClass = errors.New("reflection: class already defined")

	// ErrInvalidHierarchy indicates a superclass that is an interface, or a
	// declared interface that is not one.
	ErrInvalidHierarchy = errors.New("reflection: invalid class hierarchy")

	// ErrUnknownPrimitive indicates a primitive code the registry cannot resolve.
	ErrUnknownPrimitive = errors.New("reflection: unknown primitive type")

	// ErrNotReference indicates a descriptor that must name a class but does not.
	ErrNotReference = errors.New("reflection: descriptor is not a reference type")

	// ErrNoDescriptor indicates a metadata entry without the descriptor asked for.
	ErrNoDescriptor = errors.New("reflection: no type descriptor recorded")
)
