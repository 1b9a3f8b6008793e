package ingest

import (
	"context"
	"strings"

	"github.com/nxadm/tail"

	lserrors "github.com/livp123/logscope/pkg/errors"
)

// ReadLines reads path to EOF and returns its lines without line terminators.
// A final line lacking a newline is included.
func ReadLines(ctx context.Context, path string) ([]string, error) {
	config := tail.Config{
		Follow:    false,
		ReOpen:    false,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	}

	tailer, err := tail.TailFile(path, config)
	if err != nil {
		return nil, lserrors.NewFileError(path, err)
	}

	var lines []string
	for {
		select {
		case <-ctx.Done():
			_ = tailer.Stop()
			return nil, ctx.Err()
		case line, ok := <-tailer.Lines:
			if !ok {
				if err := tailer.Wait(); err != nil {
					return nil, lserrors.NewFileError(path, err)
				}
				return lines, nil
			}
			if line.Err != nil {
				_ = tailer.Stop()
				return nil, lserrors.NewFileError(path, line.Err)
			}
			lines = append(lines, strings.TrimSuffix(line.Text, "\r"))
		}
	}
}
