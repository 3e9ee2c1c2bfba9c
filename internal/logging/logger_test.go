// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/slukits/panes/internal/logging"
	. "github.com/slukits/panes/internal/tst"
)

type ALogger struct{ Suite }

func (s *ALogger) SetUp(t *T) { t.Parallel() }

func (s *ALogger) Parses_levels_case_insensitively(t *T) {
	for name, exp := range map[string]zerolog.Level{
		"":      zerolog.InfoLevel,
		"DEBUG": zerolog.DebugLevel,
		"warn":  zerolog.WarnLevel,
		"Error": zerolog.ErrorLevel,
	} {
		l, err := logging.ParseLevel(name)
		t.FatalOn(err)
		t.Eq(exp, l)
	}
	_, err := logging.ParseLevel("loud")
	t.ErrIs(err, logging.ErrConfig)
}

func (s *ALogger) Parses_known_formats_only(t *T) {
	f, err := logging.ParseFormat("")
	t.FatalOn(err)
	t.Eq("console", f)
	f, err = logging.ParseFormat("JSON")
	t.FatalOn(err)
	t.Eq("json", f)
	_, err = logging.ParseFormat("xml")
	t.ErrIs(err, logging.ErrConfig)
}

func (s *ALogger) Writes_json_lines_at_its_level(t *T) {
	buf, cfg := &bytes.Buffer{}, logging.DefaultConfig()
	cfg.Format, cfg.Level = "json", zerolog.WarnLevel
	l := logging.New(cfg, buf)
	l.Info().Msg("hidden")
	l.Warn().Str("pane", "#1").Msg("shown")
	t.Not.Contains(buf.String(), "hidden")
	t.Contains(buf.String(), `"pane":"#1"`)
	t.Contains(buf.String(), `"message":"shown"`)
}

func (s *ALogger) Writes_console_lines_by_default(t *T) {
	buf := &bytes.Buffer{}
	l := logging.New(logging.DefaultConfig(), buf)
	l.Info().Msg("hello")
	t.Contains(buf.String(), "INF hello")
}

func (s *ALogger) Is_disabled_without_a_file(t *T) {
	l, c, err := logging.Open(logging.DefaultConfig())
	t.FatalOn(err)
	t.FatalOn(c.Close())
	t.Eq(zerolog.Disabled, l.GetLevel())
}

func (s *ALogger) Appends_to_its_file(t *T) {
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.File = filepath.Join(t.GoT().TempDir(), "panes.log")
	for _, msg := range []string{"first", "second"} {
		l, c, err := logging.Open(cfg)
		t.FatalOn(err)
		l.Info().Msg(msg)
		t.FatalOn(c.Close())
	}
	bb, err := os.ReadFile(cfg.File)
	t.FatalOn(err)
	t.Contains(string(bb), "first")
	t.Contains(string(bb), "second")
}

func (s *ALogger) Fails_to_open_an_unwritable_file(t *T) {
	cfg := logging.DefaultConfig()
	cfg.File = filepath.Join(t.GoT().TempDir(), "missing", "panes.log")
	_, _, err := logging.Open(cfg)
	t.Not.True(err == nil)
}

func (s *ALogger) Travels_with_a_context(t *T) {
	buf := &bytes.Buffer{}
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	ctx := logging.New(cfg, buf).WithContext(context.Background())
	l := logging.Component(ctx, "view")
	l.Info().Msg("built")
	t.Contains(buf.String(), `"component":"view"`)
	l = logging.Component(context.Background(), "view")
	t.Eq(zerolog.Disabled, l.GetLevel())
}

func TestALogger(t *testing.T) {
	t.Parallel()
	Run(&ALogger{}, t)
}
