package runtime

import (
	"testing"
)

// TestConfigPath tests the ConfigPath variable
// TestConfigPath 测试 ConfigPath 变量
func TestConfigPath(t *testing.T) {
	originalPath := ConfigPath
	defer func() {
		ConfigPath = originalPath
	}()

	testPath := "/tmp/test_config.yaml"
	ConfigPath = testPath
	if ConfigPath != testPath {
		t.Errorf("ConfigPath should be %s, got %s", testPath, ConfigPath)
	}
}

// TestOverrides tests the ingest override variables
// TestOverrides 测试导入覆盖变量
func TestOverrides(t *testing.T) {
	originalRoot, originalPattern := Root, Pattern
	defer func() {
		Root, Pattern = originalRoot, originalPattern
	}()

	Root, Pattern = "/srv/logs", "*.log"
	if Root != "/srv/logs" || Pattern != "*.log" {
		t.Errorf("unexpected overrides: root=%s pattern=%s", Root, Pattern)
	}
}
