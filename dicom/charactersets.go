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
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// DefaultCharacterRepertoire decodes values of Data Elements in a Data Set without a Specific
// Character Set (0008,0005). Windows-1252 is a superset of the ISO-IR 6 default repertoire.
var DefaultCharacterRepertoire encoding.Encoding = charmap.Windows1252

// characterSet is an ISO-IR registered character set DICOM names in Specific Character Set
// (0008,0005), with the label of a golang charset that decodes it.
type characterSet struct {
	ir    int
	label string
	// plain is set when the ISO_IR form of the term is defined and extended when the ISO 2022 IR
	// form, which allows code extensions, is.
	plain, extended bool
}

// asciiLabel decodes the ISO-IR 6 default repertoire.
const asciiLabel = "us-ascii"

// See link below for list of character set defined terms.
// http://dicom.nema.org/medical/dicom/current/output/chtml/part02/sect_D.6.2.html
// TODO properly support code extensions of the ISO 2022 multi-byte sets.
var characterSets = []characterSet{
	{ir: 6, label: asciiLabel, plain: true, extended: true},
	{ir: 13, label: "shift-jis", plain: true, extended: true},
	{ir: 87, label: "iso-2022-jp", extended: true},
	{ir: 100, label: "iso-ir-100", plain: true, extended: true},
	{ir: 101, label: "iso-ir-101", plain: true, extended: true},
	{ir: 109, label: "iso-ir-109", plain: true, extended: true},
	{ir: 110, label: "iso-ir-110", plain: true, extended: true},
	{ir: 126, label: "iso-ir-126", plain: true, extended: true},
	{ir: 127, label: "iso-ir-127", plain: true, extended: true},
	{ir: 138, label: "iso-ir-138", plain: true, extended: true},
	{ir: 144, label: "iso-ir-144", plain: true, extended: true},
	{ir: 148, label: "iso-ir-148", plain: true, extended: true},
	{ir: 149, label: "iso-ir-149", extended: true},
	{ir: 159, label: "iso-2022-jp", extended: true},
	{ir: 166, label: "tis-620", plain: true, extended: true},
	{ir: 192, label: "utf-8", plain: true},
}

// labelByTerm maps every defined term to its charset label. The Chinese sets have no ISO-IR
// number.
var labelByTerm = func() map[string]string {
	m := map[string]string{
		"GB18030": "gb18030",
		"GBK":     "gbk",
	}
	for _, cs := range characterSets {
		if cs.plain {
			m[fmt.Sprintf("ISO_IR %d", cs.ir)] = cs.label
		}
		if cs.extended {
			m[fmt.Sprintf("ISO 2022 IR %d", cs.ir)] = cs.label
		}
	}
	return m
}()

// LookupEncoding returns the encoding for a Specific Character Set (0008,0005) value. Space
// padding is ignored and a value without terms selects DefaultCharacterRepertoire.
//
// A value with code extensions, e.g. `ISO 2022 IR 6\ISO 2022 IR 87`, holds several terms separated
// by backslashes, and empty terms stand for the default repertoire. Every term must be defined.
// The encoding of the first term naming a set other than ISO-IR 6 is returned, or that of the
// first term when they all name ISO-IR 6.
func LookupEncoding(value string) (encoding.Encoding, error) {
	var terms []string
	for _, term := range strings.Split(value, `\`) {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return DefaultCharacterRepertoire, nil
	}

	label := ""
	for _, term := range terms {
		l, ok := labelByTerm[term]
		if !ok {
			return nil, fmt.Errorf("specific character set defined term not found: %v", term)
		}
		if label == "" || label == asciiLabel {
			label = l
		}
	}

	coding, _ := charset.Lookup(label)
	if coding == nil {
		return nil, fmt.Errorf("missing encoding for label %q", label)
	}
	return coding, nil
}

// CharacterSetTerms returns every Specific Character Set defined term LookupEncoding accepts, in
// lexical order.
func CharacterSetTerms() []string {
	terms := make([]string, 0, len(labelByTerm))
	for term := range labelByTerm {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
