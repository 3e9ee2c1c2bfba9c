// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tst

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

const assertErr = "assert %s: %v"

// True fails the test and returns false iff given value is not true.
func (t *T) True(value bool) bool {
	t.t.Helper()
	if !value {
		t.Errorf(assertErr, "true", "expected given value to be true")
		return false
	}
	return true
}

// Eq fails the test with a diff of the string representations and
// returns false iff given values are not considered equal.  Pointers
// are equal if they point to the same address; other values are equal
// if their types and their %v (or String) representations match.
func (t *T) Eq(a, b interface{}) bool {
	t.t.Helper()
	if diff := eqDiff(a, b); diff != "" {
		t.Errorf(assertErr, "equal", diff)
		return false
	}
	return true
}

func eqDiff(a, b interface{}) string {
	if fmt.Sprintf("%T", a) != fmt.Sprintf("%T", b) {
		return fmt.Sprintf("types mismatch %T != %T", a, b)
	}
	if a != nil && reflect.ValueOf(a).Kind() == reflect.Ptr {
		if a != b {
			return fmt.Sprintf("pointer %p != %p", a, b)
		}
		return ""
	}
	return cmp.Diff(toString(a), toString(b))
}

func toString(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", v)
}

// Contains fails the test and returns false iff the string
// representation of given value doesn't contain given sub-string.
func (t *T) Contains(value interface{}, sub string) bool {
	t.t.Helper()
	if !strings.Contains(toString(value), sub) {
		t.Errorf(assertErr, "contains", fmt.Sprintf(
			"'%s' doesn't contain '%s'", toString(value), sub))
		return false
	}
	return true
}

// ErrIs fails the test and returns false iff given err doesn't wrap
// given target.
func (t *T) ErrIs(err error, target error) bool {
	t.t.Helper()
	if !errors.Is(err, target) {
		t.Errorf(assertErr, "error is",
			fmt.Sprintf("%v doesn't wrap %v", err, target))
		return false
	}
	return true
}

// Panics fails the test and returns false iff given function doesn't
// panic.
func (t *T) Panics(f func()) (hasPanicked bool) {
	t.t.Helper()
	defer func() {
		t.t.Helper()
		if r := recover(); r == nil {
			t.Errorf(assertErr, "panics", "given function doesn't panic")
			hasPanicked = false
			return
		}
		hasPanicked = true
	}()
	f()
	return true
}

// Not provides the negations of T's assertions.
type Not struct{ t *T }

// True fails the test and returns false iff given value is true.
func (n Not) True(value bool) bool {
	n.t.t.Helper()
	if value {
		n.t.Errorf(assertErr, "not-true", "expected given value be false")
		return false
	}
	return true
}

// Eq fails the test and returns false iff given values are equal in
// the sense of T.Eq.
func (n Not) Eq(a, b interface{}) bool {
	n.t.t.Helper()
	if eqDiff(a, b) == "" {
		n.t.Errorf(assertErr, "not-equal",
			fmt.Sprintf("expected %v != %v", toString(a), toString(b)))
		return false
	}
	return true
}

// Contains fails the test and returns false iff the string
// representation of given value contains given sub-string.
func (n Not) Contains(value interface{}, sub string) bool {
	n.t.t.Helper()
	if strings.Contains(toString(value), sub) {
		n.t.Errorf(assertErr, "not-contains", fmt.Sprintf(
			"'%s' contains '%s'", toString(value), sub))
		return false
	}
	return true
}
