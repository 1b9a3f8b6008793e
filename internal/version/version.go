package version

import "runtime/debug"

// Version is set at build time with -ldflags "-X github.com/livp123/logscope/internal/version.Version=..."
// Version 在构建时通过 -ldflags 设置。
var Version = "dev"

// String returns the version line printed by the CLI. Development builds
// installed with "go install" report the module version when available.
// String 返回 CLI 打印的版本信息。
func String() string {
	v := Version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return "logscope " + v
}
