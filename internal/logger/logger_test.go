package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{LevelOff, false, false},
		{LevelNormal, false, true},
		{LevelVerbose, true, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		log := New(tt.level, &buf)
		log.Debug("debug line")
		log.Info("info line")

		out := buf.String()
		if got := strings.Contains(out, "[DBG] debug line"); got != tt.wantDebug {
			t.Fatalf("level=%d: debug visible=%v, want %v (out=%q)", tt.level, got, tt.wantDebug, out)
		}
		if got := strings.Contains(out, "[INF] info line"); got != tt.wantInfo {
			t.Fatalf("level=%d: info visible=%v, want %v (out=%q)", tt.level, got, tt.wantInfo, out)
		}
	}
}

func TestNamedSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelOff, &buf)
	web := root.Named("web").Named("http")

	web.Warn("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at LevelOff, got %q", buf.String())
	}

	root.SetLevel(LevelNormal)
	web.Warn("missing %s", "container")
	if !strings.Contains(buf.String(), "[WRN] web.http: missing container") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel(true, true) != LevelOff {
		t.Fatal("quiet should win over verbose")
	}
	if ParseLevel(true, false) != LevelVerbose {
		t.Fatal("verbose flag should give LevelVerbose")
	}
	if ParseLevel(false, false) != LevelNormal {
		t.Fatal("default should be LevelNormal")
	}
}
