// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tst

import (
	"fmt"
	"sync"
	"testing"
)

// T instances are passed to suite tests providing means for logging,
// assertion, failing and cancellation of a test.
type T struct {
	t        *testing.T
	tearDown func(*T)

	// Not negates the assertions provided by T, e.g.
	//
	//	t.Not.True(fp.Contains(removed))
	Not Not
}

func newT(t *testing.T) *T {
	suiteT := &T{t: t}
	suiteT.Not = Not{t: suiteT}
	return suiteT
}

// GoT returns the wrapped testing.T instance.
func (t *T) GoT() *testing.T { return t.t }

// Log writes given arguments to the wrapped testing.T's log.
func (t *T) Log(args ...interface{}) { t.t.Log(args...) }

// Logf formats given arguments to the wrapped testing.T's log.
func (t *T) Logf(format string, args ...interface{}) {
	t.t.Logf(format, args...)
}

// Parallel signals that this test may be run in parallel with other
// parallel flagged tests.
func (t *T) Parallel() { t.t.Parallel() }

// Error flags the test as failed but continues its execution.
func (t *T) Error(args ...interface{}) {
	t.t.Helper()
	t.t.Error(args...)
}

// Errorf flags the test as failed but continues its execution.
func (t *T) Errorf(format string, args ...interface{}) {
	t.t.Helper()
	t.t.Error(fmt.Sprintf(format, args...))
}

// FailNow cancels the execution of the test after a potential tear-down
// was called.
func (t *T) FailNow() {
	t.t.Helper()
	if t.tearDown != nil {
		td := t.tearDown
		t.tearDown = nil
		td(t)
	}
	t.t.FailNow()
}

// FatalIfNot cancels the test if passed argument is false.
func (t *T) FatalIfNot(assertion bool) {
	if assertion {
		return
	}
	t.t.Helper()
	t.FailNow()
}

// FatalOn cancels the test after logging given error iff it is not nil.
func (t *T) FatalOn(err error) {
	t.t.Helper()
	if err == nil {
		return
	}
	t.Fatal(err.Error())
}

// Fatal logs given arguments and cancels the test execution.
func (t *T) Fatal(args ...interface{}) {
	t.t.Helper()
	t.Log(args...)
	t.FailNow()
}

// Fatalf logs given format-string and cancels the test execution.
func (t *T) Fatalf(format string, args ...interface{}) {
	t.t.Helper()
	t.Log(fmt.Sprintf(format, args...))
	t.FailNow()
}

// I instances are passed into a test-suite's Init-method.
type I struct{ t *testing.T }

// GoT returns the suite runner's testing.T instance.
func (i *I) GoT() *testing.T { return i.t }

// Log writes given arguments to the suite runner's log.
func (i *I) Log(args ...interface{}) { i.t.Log(args...) }

// F instances are passed into a test-suite's Finalize-method.
type F struct{ t *testing.T }

// GoT returns the suite runner's testing.T instance.
func (f *F) GoT() *testing.T { return f.t }

// Log writes given arguments to the suite runner's log.
func (f *F) Log(args ...interface{}) { f.t.Log(args...) }

// Fixtures provides a concurrency save fixture storage for parallel
// suite-tests.  The zero value is ready to use; it must not be copied
// after its first use.
//
//	type AScreen struct {
//	    tst.Suite
//	    tst.Fixtures
//	}
//
//	func (s *AScreen) SetUp(t *tst.T) {
//	    t.Parallel()
//	    s.Set(t, newScreenFixture(t))
//	}
type Fixtures struct {
	mutex sync.Mutex
	ff    map[*T]interface{}
}

// Set maps given test to given fixture.
func (ff *Fixtures) Set(t *T, fixture interface{}) {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	if ff.ff == nil {
		ff.ff = map[*T]interface{}{}
	}
	ff.ff[t] = fixture
}

// Get returns the fixture of given test.
func (ff *Fixtures) Get(t *T) interface{} {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	return ff.ff[t]
}

// Del removes the fixture of given test and returns it.
func (ff *Fixtures) Del(t *T) interface{} {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	fixture := ff.ff[t]
	delete(ff.ff, t)
	return fixture
}
