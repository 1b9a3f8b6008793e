package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/livp123/logscope/internal/entry"
	"github.com/livp123/logscope/internal/ingest"
	"github.com/livp123/logscope/internal/query"
	"github.com/livp123/logscope/internal/utils/fmtutil"
)

// printer renders results with the configured time format. Times are shown
// in loc, the zone log timestamps are read in.
// printer 使用配置的时间格式和时区输出结果。
type printer struct {
	w   io.Writer
	tf  *strftime.Strftime
	loc *time.Location
}

func newPrinter(w io.Writer, timeFormat string, loc *time.Location) (*printer, error) {
	tf, err := strftime.New(timeFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid time format %q: %w", timeFormat, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &printer{w: w, tf: tf, loc: loc}, nil
}

func (p *printer) time(t time.Time) string {
	return p.tf.FormatString(t.In(p.loc))
}

func (p *printer) value(v query.Value) string {
	if t, ok := v.Time(); ok {
		return p.time(t)
	}
	return v.String()
}

// values prints one value per line in ascending order.
func (p *printer) values(set query.Set[query.Value]) {
	for _, v := range query.SortedFunc(set, query.Value.Compare) {
		fmt.Fprintln(p.w, p.value(v))
	}
}

// entry prints an entry in the raw line layout with a formatted timestamp.
func (p *printer) entry(e entry.Entry) {
	ts := e.Timestamp().String()
	if t, ok := e.Timestamp().Time(); ok {
		ts = p.time(t)
	}
	event := e.Event().String()
	if task, ok := e.Task(); ok {
		event = fmt.Sprintf("%s %d", event, task)
	}
	fmt.Fprintf(p.w, "%s\t%s\t%s\t%s\t%s\n", e.Origin(), e.Actor(), ts, event, e.Outcome())
}

// report prints the ingestion report. With details every failure and
// warning is listed.
// report 打印导入报告。
func (p *printer) report(r *ingest.Report, details bool) {
	fmt.Fprintf(p.w, "Files:       %s (%d unreadable)\n", fmtutil.Count(r.Files), len(r.FileErrors))
	fmt.Fprintf(p.w, "Lines:       %s\n", fmtutil.Count(r.Lines))
	fmt.Fprintf(p.w, "Parsed:      %s\n", fmtutil.Count(r.Parsed))
	fmt.Fprintf(p.w, "Blank:       %s\n", fmtutil.Count(r.Blank))
	fmt.Fprintf(p.w, "Rejected:    %s (%s)\n", fmtutil.Count(r.Failed()), fmtutil.Share(r.Failed(), r.Lines))
	fmt.Fprintf(p.w, "Undated:     %s\n", fmtutil.Count(len(r.Warnings)))
	if !details {
		return
	}
	for _, fe := range r.FileErrors {
		fmt.Fprintf(p.w, "unreadable  %s: %v\n", fe.Path, fe.Err)
	}
	for _, f := range r.Failures {
		fmt.Fprintf(p.w, "rejected    %s:%d: %v\n", f.Source, f.Line, f.Err)
	}
	for _, f := range r.Warnings {
		fmt.Fprintf(p.w, "undated     %s:%d: %v\n", f.Source, f.Line, f.Err)
	}
}

func (p *printer) summary(s query.Summary) {
	fmt.Fprintf(p.w, "Entries:     %s\n", fmtutil.Count(s.Entries))
	fmt.Fprintf(p.w, "Origins:     %s\n", fmtutil.Count(s.Origins))
	fmt.Fprintf(p.w, "Users:       %s\n", fmtutil.Count(s.Actors))
	fmt.Fprintf(p.w, "Events:      %s\n", fmtutil.Count(s.Events))
	fmt.Fprintf(p.w, "Undated:     %s\n", fmtutil.Count(s.WithoutTime))
	if s.HasTimestamps {
		fmt.Fprintf(p.w, "Earliest:    %s\n", p.time(s.Earliest))
		fmt.Fprintf(p.w, "Latest:      %s\n", p.time(s.Latest))
		fmt.Fprintf(p.w, "Span:        %s\n", fmtutil.Span(s.Earliest, s.Latest))
	}
}

// tasks prints a task -> count table ordered by task number.
func (p *printer) tasks(title string, counts map[int]int) {
	fmt.Fprintf(p.w, "%s:\n", title)
	if len(counts) == 0 {
		fmt.Fprintln(p.w, " - none")
		return
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(p.w, " - task %-6d %s\n", k, fmtutil.Count(counts[k]))
	}
}

func (p *printer) rule() {
	fmt.Fprintln(p.w, strings.Repeat("-", 40))
}
