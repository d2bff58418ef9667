package logger

import "testing"

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":     LevelDebug,
		"INFO":      LevelInfo,
		"warning":   LevelWarn,
		"error":     LevelError,
		"gibberish": LevelInfo, // falls back to info
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Error("json not recognized")
	}
	if ParseFormat("text") != FormatText {
		t.Error("text not recognized")
	}
	if ParseFormat("") != FormatText {
		t.Error("default should be text")
	}
}

func TestGetBeforeInitIsNull(t *testing.T) {
	if _, ok := Get().(*NullLogger); !ok {
		t.Error("uninitialized Get() should return a NullLogger")
	}
}

func TestInitAndShutdown(t *testing.T) {
	if err := Init(Config{Level: LevelDebug}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Shutdown()

	if err := Init(Config{}); err == nil {
		t.Error("double Init should fail")
	}

	l := Get()
	if _, ok := l.(*NullLogger); ok {
		t.Error("initialized Get() returned the null logger")
	}
	l.Info("smoke", "key", "value")

	if err := Shutdown(); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
	if _, ok := Get().(*NullLogger); !ok {
		t.Error("Get() after Shutdown should return a NullLogger")
	}
}
