package loaders

import (
	"bufio"
	"context"
	"regexp"
	"strconv"

	"github.com/satyrius/gonx"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/logging"
	"github.com/arthur-debert/dview/pkg/types"
)

// maxLineSize bounds a single log line
const maxLineSize = 1024 * 1024

var formatVariable = regexp.MustCompile(`\$(\w+)`)

// loadAccessLog parses web server access logs with a gonx format string
// (the "format" param, nginx log_format syntax). Lines that do not match
// are skipped unless "strict=true".
func loadAccessLog(ctx context.Context, src types.Source) (*types.Dataset, error) {
	format := src.Param("format", "")
	if format == "" {
		return nil, errors.New(errors.ErrInvalidInput, "access_log needs a format")
	}
	strict, err := strconv.ParseBool(src.Param("strict", "false"))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "strict must be true or false")
	}

	columns := formatColumns(format)
	parser := gonx.NewParser(format)

	rc, err := openSource(src.Path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var rows [][]string
	lineNo, skipped := 0, 0
	for scanner.Scan() {
		lineNo++
		if lineNo%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		entry, err := parser.ParseString(line)
		if err != nil {
			if strict {
				return nil, errors.Wrapf(err, errors.ErrSourceParse, "%s:%d does not match the log format", src.Path, lineNo)
			}
			skipped++
			continue
		}

		fields := entry.Fields()
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = fields[col]
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceParse, "error reading %s", src.Path)
	}

	if skipped > 0 {
		logger := logging.GetLogger("loaders.access_log")
		logger.Warn().
			Str("path", src.Path).
			Int("skipped", skipped).
			Msg("Skipped lines not matching the log format")
	}

	return types.NewDataset(columns, rows), nil
}

// formatColumns lists the variables of a log format in order, once each
func formatColumns(format string) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, m := range formatVariable.FindAllStringSubmatch(format, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			columns = append(columns, m[1])
		}
	}
	return columns
}
