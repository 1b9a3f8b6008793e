package config

const (
	// DefaultConfigPath is the standard location for the logscope configuration file.
	// DefaultConfigPath 是 logscope 配置文件的标准位置。
	DefaultConfigPath = "/etc/logscope/config.yaml"

	// DefaultRoot is the directory scanned for log files when none is configured.
	DefaultRoot = "/var/log/logscope"

	// DefaultPattern selects every .log file below the root.
	DefaultPattern = "**/*.log"

	// DefaultLocation is the time zone log timestamps are read in.
	DefaultLocation = "UTC"

	// DefaultTimeFormat renders timestamps as dd.mm.yyyy HH:MM:SS.
	DefaultTimeFormat = "%d.%m.%Y %H:%M:%S"

	// DefaultMetricsPath is where the metrics textfile is written.
	DefaultMetricsPath = "/var/lib/logscope/logscope.prom"
)
