// Command artcli is a small operational tool for exercising package art
// outside of tests: loading keys from a file into a tree, merging two
// trees built from separate files, and dumping a tree's structure as
// Graphviz DOT.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/colstore/art"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// newLogger builds a console-formatted zerolog.Logger stamped with a
// per-invocation run id, so log lines from one artcli run can be told
// apart from another's when output is collected centrally.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
}

// entry is one line of an ingest input file: a key and the row id it
// should be chained under. A blank key line indicates AddNull.
type entry struct {
	key   []byte
	rowID uint32
}

// loadEntries reads path as newline-delimited records of the form
// "key\trowid" (tab-separated); a line without the tab and row id gets the
// row id after the previous line's (0 for the first line), so a file with
// no row ids is numbered sequentially from 0 in file order. A line that is
// empty before the tab (or entirely empty) represents the null key.
func loadEntries(path string) ([]entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var entries []entry
	var next uint32
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		key, rowID, err := parseLine(line, next)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		entries = append(entries, entry{key: key, rowID: rowID})
		next = rowID + 1
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return entries, nil
}

func parseLine(line string, fallbackRowID uint32) ([]byte, uint32, error) {
	if tab := strings.IndexByte(line, '\t'); tab >= 0 {
		key, rowField := line[:tab], line[tab+1:]
		rowID, err := strconv.ParseUint(rowField, 10, 32)
		if err != nil {
			return nil, 0, fmt.Errorf("bad row id %q: %w", rowField, err)
		}
		return []byte(key), uint32(rowID), nil
	}
	return []byte(line), fallbackRowID, nil
}

// buildTree ingests entries into a freshly created tree sized to hold
// them, routing empty keys to AddNull.
func buildTree(entries []entry) *art.Tree {
	capacity := 0
	for _, e := range entries {
		if int(e.rowID)+1 > capacity {
			capacity = int(e.rowID) + 1
		}
	}
	t := art.New(capacity)
	for _, e := range entries {
		if len(e.key) == 0 {
			t.AddNull(e.rowID)
			continue
		}
		t.AddEntry(e.key, e.rowID)
	}
	return t
}
