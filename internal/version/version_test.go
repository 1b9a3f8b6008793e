package version

import (
	"strings"
	"testing"
)

// TestString tests the printed version line
// TestString 测试打印的版本信息
func TestString(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}

	got := String()
	if !strings.HasPrefix(got, "logscope ") {
		t.Errorf("String() = %q, want prefix %q", got, "logscope ")
	}
}

func TestStringOverride(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	if got := String(); got != "logscope v1.2.3" {
		t.Errorf("String() = %q, want %q", got, "logscope v1.2.3")
	}
}
