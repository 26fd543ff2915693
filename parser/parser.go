package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"
)

//**********************************************************
// edge-list parsing
//**********************************************************

// ConnectionRecord is one directed track read from the edge list.
type ConnectionRecord struct {
	From   string
	To     string
	Weight int64
}

// ParseEdgeList reads a line-oriented edge list. Every line carries a
// one-character source stop, a one-character target stop and the track
// weight in the remainder of the line, e.g. "AB5". Blank lines are
// skipped, any other malformed line aborts the whole parse.
func ParseEdgeList(file string) ([]ConnectionRecord, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records := make([]ConnectionRecord, 0, 64)
	scanner := bufio.NewScanner(f)
	line_num := 0
	for scanner.Scan() {
		line_num++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		record, err := parseConnection(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line_num, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	slog.Info("parsed edge list: " + strconv.Itoa(len(records)) + " connections")
	return records, nil
}

func parseConnection(line string) (ConnectionRecord, error) {
	if len(line) < 3 {
		return ConnectionRecord{}, fmt.Errorf("incomplete connection %q", line)
	}
	weight, err := strconv.ParseInt(line[2:], 10, 64)
	if err != nil {
		return ConnectionRecord{}, fmt.Errorf("invalid weight in %q", line)
	}
	// zero-weight tracks would let bounded searches loop forever
	if weight <= 0 {
		return ConnectionRecord{}, fmt.Errorf("weight must be positive in %q", line)
	}
	return ConnectionRecord{
		From:   line[0:1],
		To:     line[1:2],
		Weight: weight,
	}, nil
}
