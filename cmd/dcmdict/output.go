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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dcmdict/go-dicom-dict/dicom"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML, formatTOML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q, want one of text, json, yaml, toml", format)
	}
}

// document is the output of a command. Every structured format encodes the same value; text
// output is produced by writeText.
type document interface {
	writeText(w io.Writer) error
}

func render(w io.Writer, format string, doc document) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case formatTOML:
		return toml.NewEncoder(w).Encode(doc)
	default:
		return doc.writeText(w)
	}
}

type entryRecord struct {
	Tag     string `json:"tag" yaml:"tag" toml:"tag"`
	Name    string `json:"name" yaml:"name" toml:"name"`
	Keyword string `json:"keyword" yaml:"keyword" toml:"keyword"`
	VR      string `json:"vr" yaml:"vr" toml:"vr"`
	VM      string `json:"vm" yaml:"vm" toml:"vm"`
	Retired bool   `json:"retired" yaml:"retired" toml:"retired"`
}

func newEntryRecord(e *dicom.DictionaryEntry) entryRecord {
	vrs := make([]string, len(e.VRs))
	for i, vr := range e.VRs {
		vrs[i] = vr.Name
	}
	return entryRecord{
		Tag:     e.Pattern(),
		Name:    e.Name,
		Keyword: e.Keyword,
		VR:      strings.Join(vrs, " or "),
		VM:      e.VM.String(),
		Retired: e.Retired,
	}
}

type entryList struct {
	Entries []entryRecord `json:"entries" yaml:"entries" toml:"entries"`
}

func newEntryList(entries []*dicom.DictionaryEntry) entryList {
	l := entryList{Entries: make([]entryRecord, 0, len(entries))}
	for _, e := range entries {
		l.Entries = append(l.Entries, newEntryRecord(e))
	}
	return l
}

func (l entryList) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range l.Entries {
		retired := ""
		if e.Retired {
			retired = "RET"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", e.Tag, e.Keyword, e.VR, e.VM, e.Name, retired)
	}
	return tw.Flush()
}

type infoRecord struct {
	Source      string `json:"source" yaml:"source" toml:"source"`
	Version     string `json:"version" yaml:"version" toml:"version"`
	Entries     int    `json:"entries" yaml:"entries" toml:"entries"`
	Repeating   int    `json:"repeating" yaml:"repeating" toml:"repeating"`
	Retired     int    `json:"retired" yaml:"retired" toml:"retired"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint" toml:"fingerprint"`
}

func (r infoRecord) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "source:\t%s\n", r.Source)
	fmt.Fprintf(tw, "version:\t%s\n", r.Version)
	fmt.Fprintf(tw, "entries:\t%d\n", r.Entries)
	fmt.Fprintf(tw, "repeating:\t%d\n", r.Repeating)
	fmt.Fprintf(tw, "retired:\t%d\n", r.Retired)
	fmt.Fprintf(tw, "fingerprint:\t%s\n", r.Fingerprint)
	return tw.Flush()
}

type syntaxRecord struct {
	UID          string `json:"uid" yaml:"uid" toml:"uid"`
	Name         string `json:"name" yaml:"name" toml:"name"`
	VREncoding   string `json:"vr_encoding" yaml:"vr_encoding" toml:"vr_encoding"`
	ByteOrder    string `json:"byte_order" yaml:"byte_order" toml:"byte_order"`
	Deflated     bool   `json:"deflated" yaml:"deflated" toml:"deflated"`
	Encapsulated bool   `json:"encapsulated" yaml:"encapsulated" toml:"encapsulated"`
	Retired      bool   `json:"retired" yaml:"retired" toml:"retired"`
}

func newSyntaxRecord(ts *dicom.TransferSyntax) syntaxRecord {
	encoding := "explicit"
	if ts.Implicit {
		encoding = "implicit"
	}
	return syntaxRecord{
		UID:          ts.UID,
		Name:         ts.Name,
		VREncoding:   encoding,
		ByteOrder:    ts.ByteOrder.String(),
		Deflated:     ts.Deflated,
		Encapsulated: ts.Encapsulated,
		Retired:      ts.Retired,
	}
}

type syntaxList struct {
	TransferSyntaxes []syntaxRecord `json:"transfer_syntaxes" yaml:"transfer_syntaxes" toml:"transfer_syntaxes"`
}

func (l syntaxList) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, ts := range l.TransferSyntaxes {
		var flags []string
		if ts.Deflated {
			flags = append(flags, "deflated")
		}
		if ts.Encapsulated {
			flags = append(flags, "encapsulated")
		}
		if ts.Retired {
			flags = append(flags, "retired")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ts.UID, ts.VREncoding, ts.ByteOrder, strings.Join(flags, ","), ts.Name)
	}
	return tw.Flush()
}

type charsetRecord struct {
	Term     string `json:"term" yaml:"term" toml:"term"`
	Encoding string `json:"encoding" yaml:"encoding" toml:"encoding"`
}

type charsetList struct {
	CharacterSets []charsetRecord `json:"character_sets" yaml:"character_sets" toml:"character_sets"`
}

func (l charsetList) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cs := range l.CharacterSets {
		term := cs.Term
		if term == "" {
			term = "(default)"
		}
		fmt.Fprintf(tw, "%s\t%s\n", term, cs.Encoding)
	}
	return tw.Flush()
}
