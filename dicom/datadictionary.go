// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// The data dictionary table has one attribute per line and 6 tab separated columns:
//
//	tag	name	keyword	vr	vm	retired
//
// tag is written (gggg,eeee) with x at wildcard positions, vr lists alternatives joined by " or "
// and retired is either RET or empty. Lines starting with # are comments, except that a
// "# version: <edition>" comment names the edition of PS3.6 the table was taken from.
//
//go:embed datadictionary.tsv
var embeddedDataDictionary string

const versionPrefix = "version:"

var (
	defaultDictionaryOnce sync.Once
	defaultDictionary     *Dictionary
)

// Default returns the dictionary built from the table embedded in the package. It is built on
// first use and shared by all callers.
func Default() *Dictionary {
	defaultDictionaryOnce.Do(func() {
		d, err := LoadDictionary(strings.NewReader(embeddedDataDictionary))
		if err != nil {
			panic(fmt.Sprintf("dicom: embedded data dictionary is corrupt: %v", err))
		}
		defaultDictionary = d
	})
	return defaultDictionary
}

// LoadDictionary builds a Dictionary from a table in the format of the embedded data
// dictionary.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var (
		version string
		entries []DictionaryEntry
	)

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			comment := strings.TrimSpace(strings.TrimPrefix(text, "#"))
			if strings.HasPrefix(comment, versionPrefix) {
				version = strings.TrimSpace(strings.TrimPrefix(comment, versionPrefix))
			}
			continue
		}

		entry, err := parseDictionaryRow(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading data dictionary: %v", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("data dictionary has no entries")
	}

	return NewDictionary(version, entries)
}

func parseDictionaryRow(text string) (DictionaryEntry, error) {
	fields := strings.Split(text, "\t")
	if len(fields) == 5 {
		fields = append(fields, "")
	}
	if len(fields) != 6 {
		return DictionaryEntry{}, fmt.Errorf("expected 6 tab separated columns, got %d", len(fields))
	}

	tag, mask, err := parseTagPattern(fields[0])
	if err != nil {
		return DictionaryEntry{}, err
	}

	var vrs []*VR
	if vrText := strings.TrimSpace(fields[3]); vrText != "" {
		for _, name := range strings.Split(vrText, " or ") {
			vr, err := LookupVR(strings.TrimSpace(name))
			if err != nil {
				return DictionaryEntry{}, fmt.Errorf("%v: %v", fields[0], err)
			}
			vrs = append(vrs, vr)
		}
	}

	vm, err := ParseValueMultiplicity(fields[4])
	if err != nil {
		return DictionaryEntry{}, fmt.Errorf("%v: %v", fields[0], err)
	}

	var retired bool
	switch strings.TrimSpace(fields[5]) {
	case "RET":
		retired = true
	case "":
	default:
		return DictionaryEntry{}, fmt.Errorf("%v: unknown retired marker %q", fields[0], fields[5])
	}

	return DictionaryEntry{
		Tag:     tag,
		Mask:    mask,
		Name:    strings.TrimSpace(fields[1]),
		Keyword: strings.TrimSpace(fields[2]),
		VRs:     vrs,
		VM:      vm,
		Retired: retired,
	}, nil
}

// parseTagPattern parses a tag written (gggg,eeee) where any digit may be x.
func parseTagPattern(s string) (DataElementTag, uint32, error) {
	s = strings.TrimSpace(s)
	if len(s) != 11 || s[0] != '(' || s[5] != ',' || s[10] != ')' {
		return 0, 0, fmt.Errorf("malformed tag %q", s)
	}

	var tag, mask uint32
	for _, c := range s[1:5] + s[6:10] {
		tag <<= 4
		mask <<= 4
		if c == 'x' || c == 'X' {
			continue
		}
		n, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil {
			return 0, 0, fmt.Errorf("malformed tag %q", s)
		}
		tag |= uint32(n)
		mask |= 0xF
	}
	return DataElementTag(tag), mask, nil
}

// WriteTo writes the dictionary in the format read by LoadDictionary.
func (d *Dictionary) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	write := func(s string) {
		m, _ := bw.WriteString(s)
		n += int64(m)
	}

	if d.version != "" {
		write("# " + versionPrefix + " " + d.version + "\n")
	}
	for _, e := range d.entries {
		write(e.row())
		write("\n")
	}
	return n, bw.Flush()
}

func (e *DictionaryEntry) row() string {
	retired := ""
	if e.Retired {
		retired = "RET"
	}
	return strings.Join([]string{e.Pattern(), e.Name, e.Keyword, e.vrNames(), e.VM.String(), retired}, "\t")
}
