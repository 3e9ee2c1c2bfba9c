// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tst runs the test-suites of this module.  A test-suite is a
// struct embedding Suite whose public methods taking exactly one *T
// argument are run as sub-tests of the go-test calling Run:
//
//	type AFlowPane struct{ tst.Suite }
//
//	func (s *AFlowPane) SetUp(t *tst.T) { t.Parallel() }
//
//	func (s *AFlowPane) Fills_rows_first(t *tst.T) { ... }
//
//	func TestAFlowPane(t *testing.T) { tst.Run(&AFlowPane{}, t) }
//
// Special methods are Init(*I) run before any suite-test, SetUp(*T) and
// TearDown(*T) run around each suite-test and Finalize(*F) run after
// all suite-tests.
package tst

import (
	"reflect"
	"strings"
	"testing"
)

// Suite implements the private methods of the SuiteEmbedder interface.
type Suite struct {
	self            interface{}
	value           reflect.Value
	rtype           reflect.Type
	setUp, tearDown *reflect.Method
}

// SuiteEmbedder is implemented by embedding a Suite-instance.
type SuiteEmbedder interface {
	init(interface{}, *testing.T) *Suite
}

const special = "SetUpTearDownInitFinalize"

func (s *Suite) init(self interface{}, t *testing.T) *Suite {
	s.self = self
	s.value = reflect.ValueOf(self)
	s.rtype = reflect.TypeOf(self)
	for i := 0; i < s.rtype.NumMethod(); i++ {
		m := s.rtype.Method(i)
		switch m.Name {
		case "SetUp":
			s.setUp = &m
		case "TearDown":
			s.tearDown = &m
		case "Init":
			m.Func.Call([]reflect.Value{s.value, reflect.ValueOf(&I{t: t})})
		case "Finalize":
			finalize := m
			t.Cleanup(func() {
				finalize.Func.Call([]reflect.Value{
					s.value, reflect.ValueOf(&F{t: t})})
			})
		}
	}
	return s
}

// Run sets up embedded Suite-instance and runs all public methods of
// given suite which have exactly one argument and are not special as
// sub-tests of given testing.T instance.
func Run(suite SuiteEmbedder, t *testing.T) {
	s := suite.init(suite, t)
	for i := 0; i < s.rtype.NumMethod(); i++ {
		method := s.rtype.Method(i)
		if method.Type.NumIn() != 2 {
			continue
		}
		if strings.Contains(special, method.Name) {
			continue
		}
		t.Run(method.Name, s.subTest(method))
	}
}

func (s *Suite) subTest(test reflect.Method) func(*testing.T) {
	return func(t *testing.T) {
		suiteT := newT(t)
		if s.tearDown != nil {
			suiteT.tearDown = func(t *T) {
				s.tearDown.Func.Call(
					[]reflect.Value{s.value, reflect.ValueOf(t)})
			}
		}
		tv := reflect.ValueOf(suiteT)
		if s.setUp != nil {
			s.setUp.Func.Call([]reflect.Value{s.value, tv})
		}
		test.Func.Call([]reflect.Value{s.value, tv})
		if suiteT.tearDown != nil {
			suiteT.tearDown(suiteT)
		}
	}
}
