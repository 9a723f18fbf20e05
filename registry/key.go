// SPDX-License-Identifier: MIT
// Package: fixgen/registry
//
// key.go - the composite (type, qualifier) registry key.

package registry

import (
	"fmt"
	"reflect"
)

// Key identifies one registry entry: a Go type plus an optional qualifier
// tag distinguishing generator flavours for the same type. Keys compare
// by value and are valid map keys.
type Key struct {
	rt        reflect.Type
	qualifier string
}

// KeyOf builds the Key for type T under the given qualifier; the empty
// qualifier names the default flavour. The pointer dance obtains a
// reflect.Type even for interface types such as any.
func KeyOf[T any](qualifier string) Key {
	return Key{
		rt:        reflect.TypeOf((*T)(nil)).Elem(),
		qualifier: qualifier,
	}
}

// Type returns the Go type this key binds.
func (k Key) Type() reflect.Type { return k.rt }

// Qualifier returns the flavour tag; empty means the default flavour.
func (k Key) Qualifier() string { return k.qualifier }

// String renders the key for error messages: "int64" or "int64/even".
func (k Key) String() string {
	if k.qualifier == "" {
		return k.rt.String()
	}

	return fmt.Sprintf("%s/%s", k.rt, k.qualifier)
}
