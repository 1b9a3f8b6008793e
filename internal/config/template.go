package config

// DefaultConfigTemplate is written by `logscope init`. It mirrors Defaults()
// apart from ingest.workers, which defaults to the number of CPUs.
// DefaultConfigTemplate 由 `logscope init` 写入。
const DefaultConfigTemplate = `# logscope configuration file / logscope 配置文件

# Ingestion / 导入
ingest:
  # Directory scanned recursively for log files.
  # 递归扫描日志文件的目录。
  root: "/var/log/logscope"

  # Doublestar glob relative to root.
  # 相对于 root 的 doublestar 通配符。
  pattern: "**/*.log"

  # Number of files read concurrently.
  # 并发读取的文件数。
  workers: 4

  # Time zone of log timestamps (IANA name).
  # 日志时间戳所在时区（IANA 名称）。
  location: "UTC"

# Output / 输出
output:
  # strftime pattern used to print timestamps.
  # 打印时间戳使用的 strftime 格式。
  time_format: "%d.%m.%Y %H:%M:%S"

# Prometheus textfile export / Prometheus textfile 导出
metrics:
  textfile_enabled: false
  textfile_path: "/var/lib/logscope/logscope.prom"

# Logging / 日志
logging:
  # Write to a rotating file instead of stderr.
  # 写入轮转文件而非 stderr。
  enabled: false
  level: "info"
  # console or json / 控制台或 JSON 格式
  format: "console"
  # Keep this outside ingest.root so logscope does not read its own log.
  path: "/var/log/logscope.log"
  max_size: 10
  max_backups: 3
  max_age: 30
  compress: true
`
