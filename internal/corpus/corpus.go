// Package corpus reads fuzz corpus entries from disk and replays them through the arbitrary
// generators to check that each entry produces the same value every time.
package corpus

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const fuzzHeader = "go test fuzz v1"

var ErrMalformedEntry = errors.New("malformed corpus entry")

type Entry struct {
	Name string
	Data []byte
}

// Load reads one corpus entry. Files written by the Go fuzzer yield the []byte value they
// hold; anything else is used as is.
func Load(path string) (Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "read corpus entry %s", path)
	}
	data, err := Parse(content)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "parse corpus entry %s", path)
	}
	return Entry{Name: filepath.Base(path), Data: data}, nil
}

func Parse(content []byte) ([]byte, error) {
	header, rest, _ := bytes.Cut(content, []byte("\n"))
	if strings.TrimSpace(string(header)) != fuzzHeader {
		return content, nil
	}

	var values []string
	for _, line := range strings.Split(string(rest), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			values = append(values, line)
		}
	}
	if len(values) != 1 {
		return nil, errors.Wrapf(ErrMalformedEntry, "want one value, have %d", len(values))
	}

	quoted, ok := strings.CutPrefix(values[0], "[]byte(")
	if !ok {
		return nil, errors.Wrapf(ErrMalformedEntry, "not a []byte value: %s", values[0])
	}
	quoted, ok = strings.CutSuffix(quoted, ")")
	if !ok {
		return nil, errors.Wrapf(ErrMalformedEntry, "unterminated value: %s", values[0])
	}
	s, err := strconv.Unquote(quoted)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedEntry, err.Error())
	}
	return []byte(s), nil
}

// Format renders data the way the Go fuzzer stores a single []byte input.
func Format(data []byte) []byte {
	return []byte(fuzzHeader + "\n[]byte(" + strconv.Quote(string(data)) + ")\n")
}

// LoadDir loads every regular file in dir, sorted by name.
func LoadDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read corpus dir %s", dir)
	}

	var entries []Entry
	for _, dirEntry := range dirEntries {
		if !dirEntry.Type().IsRegular() {
			continue
		}
		entry, err := Load(filepath.Join(dir, dirEntry.Name()))
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries, nil
}
