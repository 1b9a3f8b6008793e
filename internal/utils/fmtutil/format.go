// Package fmtutil provides formatting utilities for human-readable output.
// Package fmtutil 提供用于人类可读输出的格式化工具。
package fmtutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Count formats a count with thousand separators.
// Count 格式化计数，添加千位分隔符。
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Share formats part as a percentage of whole. An empty whole yields "0.00%".
// Share 将 part 格式化为 whole 的百分比。
func Share(part, whole int) string {
	if whole <= 0 {
		return "0.00%"
	}
	return humanize.FormatFloat("#,###.##", float64(part)*100/float64(whole)) + "%"
}

// Span formats the distance between two timestamps as days, hours,
// minutes and seconds, e.g. "3d 4h 12s".
// Span 将两个时间戳之间的间隔格式化为天/小时/分钟/秒。
func Span(from, to time.Time) string {
	d := to.Sub(from)
	if d < 0 {
		d = -d
	}
	if d < time.Second {
		return "0s"
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " ")
}
