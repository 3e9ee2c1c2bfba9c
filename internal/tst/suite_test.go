// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tst_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/slukits/panes/internal/tst"
)

// recording logs the special and the test methods in the order they
// are called.
type recording struct {
	tst.Suite
	log []string
}

func (s *recording) Init(t *tst.I) { s.log = append(s.log, "init") }
func (s *recording) SetUp(t *tst.T) { s.log = append(s.log, "setup") }
func (s *recording) TearDown(t *tst.T) { s.log = append(s.log, "teardown") }
func (s *recording) Finalize(t *tst.F) { s.log = append(s.log, "finalize") }
func (s *recording) A_test(t *tst.T) { s.log = append(s.log, "a") }
func (s *recording) B_test(t *tst.T) { s.log = append(s.log, "b") }
func (s *recording) NotATest() { s.log = append(s.log, "not") }

func Test_a_suite_runs_its_tests_between_its_special_methods(
	t *testing.T,
) {
	t.Parallel()
	s := &recording{}
	if !t.Run("recording", func(t *testing.T) { tst.Run(s, t) }) {
		t.Fatal("expected recording suite to pass")
	}
	exp := "init setup a teardown setup b teardown finalize"
	if got := strings.Join(s.log, " "); got != exp {
		t.Errorf("expected calls %q; got %q", exp, got)
	}
}

type parallel struct {
	tst.Suite
	tst.Fixtures
	mutex sync.Mutex
	seen  map[string]bool
}

func (s *parallel) SetUp(t *tst.T) {
	t.Parallel()
	s.Set(t, t.GoT().Name())
}

func (s *parallel) TearDown(t *tst.T) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.seen[s.Del(t).(string)] = s.Get(t) == nil
}

func (s *parallel) First(t *tst.T) { t.Eq(t.GoT().Name(), s.Get(t)) }
func (s *parallel) Second(t *tst.T) { t.Eq(t.GoT().Name(), s.Get(t)) }
func (s *parallel) Third(t *tst.T) { t.Eq(t.GoT().Name(), s.Get(t)) }

func Test_fixtures_are_separated_by_suite_test(t *testing.T) {
	t.Parallel()
	s := &parallel{seen: map[string]bool{}}
	if !t.Run("parallel", func(t *testing.T) { tst.Run(s, t) }) {
		t.Fatal("expected parallel suite to pass")
	}
	if len(s.seen) != 3 {
		t.Fatalf("expected 3 fixtures; got %d", len(s.seen))
	}
	for name, deleted := range s.seen {
		if !deleted {
			t.Errorf("expected fixture %s to be deleted", name)
		}
	}
}

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

type assertions struct{ tst.Suite }

func (s *assertions) SetUp(t *tst.T) { t.Parallel() }

func (s *assertions) Compare_pointers_by_identity(t *tst.T) {
	a, b := &stringer{"x"}, &stringer{"x"}
	t.Eq(a, a)
	t.Not.Eq(a, b)
}

func (s *assertions) Compare_values_by_type_and_representation(t *tst.T) {
	t.Eq(stringer{"x"}, stringer{"x"})
	t.Eq("x", stringer{"x"}.String())
	t.Not.Eq("x", stringer{"x"})
	t.Not.Eq(1, int64(1))
	t.Eq([]int{1, 2}, []int{1, 2})
}

func (s *assertions) Match_sub_strings_of_representations(t *tst.T) {
	t.Contains(stringer{"alice"}, "lic")
	t.Contains(42, "4")
	t.Not.Contains("bob", "alice")
}

func (s *assertions) Match_wrapped_errors(t *tst.T) {
	errA := errors.New("a")
	t.ErrIs(fmt.Errorf("b: %w", errA), errA)
}

func (s *assertions) Recover_panics(t *tst.T) {
	t.True(t.Panics(func() { panic("x") }))
	t.Not.True(false)
}

func TestAssertions(t *testing.T) {
	t.Parallel()
	tst.Run(&assertions{}, t)
}
