package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cslines/internal/config"
	"cslines/internal/driver"
	"cslines/internal/format"
	"cslines/internal/linebreak"
	"cslines/internal/parser"
	"cslines/internal/source"
)

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input   string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"AUTO", uiModeAuto, false},
		{" on ", uiModeOn, false},
		{"off", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if (err != nil) != tc.wantErr {
			t.Fatalf("readUIMode(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestRenderFmtJSON(t *testing.T) {
	results := []driver.FormatResult{
		{Path: "a.cs", Changed: true},
		{Path: "b.cs", Cached: true},
		{Path: "c.cs", Err: errors.New("boom")},
	}
	var buf bytes.Buffer
	if err := renderFmtJSON(&buf, results, true); err != nil {
		t.Fatal(err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0]["changed"] != true || got[0]["check"] != true {
		t.Errorf("unexpected first entry: %v", got[0])
	}
	if got[2]["error"] != "boom" {
		t.Errorf("expected error text, got %v", got[2])
	}
}

func TestRenderFmtTextSummary(t *testing.T) {
	results := []driver.FormatResult{
		{Path: "a.cs", Changed: true},
		{Path: "b.cs"},
	}
	var buf bytes.Buffer
	hasErrors, hasChanges := renderFmtText(&buf, results, false, false)
	if hasErrors || !hasChanges {
		t.Fatalf("hasErrors=%v hasChanges=%v", hasErrors, hasChanges)
	}
	out := buf.String()
	if !strings.Contains(out, "reformatted a.cs") {
		t.Errorf("missing reformatted line:\n%s", out)
	}
	if !strings.Contains(out, "2 file(s), 1 reformatted") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestExplainRowsFilter(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.cs", []byte("using System;\nvoid M() { }")))
	res, err := parser.ParseFile(file, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	decisions := format.Sweep(res.Tree, format.DefaultOptions())

	all := explainRows(file, decisions, true)
	if len(all) != len(decisions) {
		t.Fatalf("--all lists %d of %d pairs", len(all), len(decisions))
	}
	changed := explainRows(file, decisions, false)
	if len(changed) == 0 || len(changed) >= len(all) {
		t.Fatalf("filtered rows = %d, all = %d", len(changed), len(all))
	}
	var sawMethod bool
	for _, r := range changed {
		if r.CurrText == "void" {
			sawMethod = true
			if r.Existing != 1 || r.Lines != 2 || !r.Changed {
				t.Errorf("using -> void: existing %d lines %d", r.Existing, r.Lines)
			}
			if r.Position != "2:1" {
				t.Errorf("position = %s", r.Position)
			}
		}
	}
	if !sawMethod {
		t.Fatal("expected the using/method gap among changed rows")
	}
}

func TestCellText(t *testing.T) {
	if got := cellText("EOF", ""); got != "<EOF>" {
		t.Errorf("empty text = %q", got)
	}
	if got := cellText("StringLiteral", "\"a\nb\""); got != `"a\nb"` {
		t.Errorf("escaped = %q", got)
	}
	long := strings.Repeat("x", explainTextWidth*2)
	if got := cellText("Identifier", long); len([]rune(got)) != explainTextWidth {
		t.Errorf("truncated to %d runes", len([]rune(got)))
	}
}

func TestRunInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	var out bytes.Buffer
	initCmd.SetOut(&out)
	defer initCmd.SetOut(nil)

	if err := runInit(initCmd, []string{dir}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != config.Template() {
		t.Fatalf("unexpected config:\n%s", data)
	}
	if err := runInit(initCmd, []string{dir}); err == nil {
		t.Fatal("expected second init to fail")
	}
}

func TestProgressWanted(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		name string
		mode uiMode
		out  fmtOutput
		want bool
	}{
		{"forced on", uiModeOn, fmtOutput{format: "text"}, true},
		{"off", uiModeOff, fmtOutput{format: "text"}, false},
		{"auto without a terminal", uiModeAuto, fmtOutput{format: "text"}, false},
		{"quiet", uiModeOn, fmtOutput{quiet: true, format: "text"}, false},
		{"code on stdout", uiModeOn, fmtOutput{stdout: true, format: "text"}, false},
		{"json", uiModeOn, fmtOutput{format: "json"}, false},
	}
	for _, tt := range tests {
		if got := progressWanted(tt.mode, &buf, tt.out); got != tt.want {
			t.Errorf("%s: progressWanted = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestUIModeFlagValue(t *testing.T) {
	m := uiModeAuto
	if err := m.Set("OFF"); err != nil || m != uiModeOff {
		t.Fatalf("Set(OFF) = %q, %v", m, err)
	}
	if err := m.Set("never"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if m != uiModeOff {
		t.Fatalf("failed Set changed the value to %q", m)
	}
}

func TestBuildReport(t *testing.T) {
	report := newBuildReport()
	if report.Revision != linebreak.Revision || len(report.Rules) != 5 {
		t.Fatalf("report rules = %d at revision %d", len(report.Rules), report.Revision)
	}
	if report.Rules[0] != "property-accessor" || report.Rules[4] != "generated-symbol-spacing" {
		t.Fatalf("rules out of order: %v", report.Rules)
	}

	cfg := config.Default()
	cfg.Format.Reason = linebreak.Paste
	report.withConfig(cfg)
	var out bytes.Buffer
	if err := report.render(&out, report.Version); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	for _, want := range []string{"cslines " + report.Version, "rules:   revision", "brace-adjacency", "config:  built-in defaults, reason paste"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "commit:") {
		t.Errorf("commit shown without --hash:\n%s", text)
	}
}

func TestRenderExplainTable(t *testing.T) {
	rows := []explainRow{
		{Position: "2:1", PrevKind: "Semicolon", PrevText: ";", CurrKind: "Ident", CurrText: "void",
			Mode: linebreak.ModePreserve, Count: 2, Rule: linebreak.RuleTopLevelSpacing, Existing: 1, Lines: 2, Changed: true},
	}
	var out bytes.Buffer
	if err := renderExplainTable(&out, rows, linebreak.Command, 7); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	for _, want := range []string{"reason: command, 1 of 7 pair(s) shown", "pos", "adjust", "2:1", "top-level-spacing", "Preserve(2)", "1 -> 2"} {
		if !strings.Contains(text, want) {
			t.Errorf("table missing %q:\n%s", want, text)
		}
	}
}
