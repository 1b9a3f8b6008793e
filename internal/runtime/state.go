package runtime

// ConfigPath stores the path to the configuration file provided via CLI flags.
// ConfigPath 存储通过 CLI 标志提供的配置文件路径。
var ConfigPath string

// Root overrides ingest.root when set via --root.
// Root 通过 --root 覆盖 ingest.root。
var Root string

// Pattern overrides ingest.pattern when set via --pattern.
// Pattern 通过 --pattern 覆盖 ingest.pattern。
var Pattern string
