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
	"fmt"

	"github.com/dcmdict/go-dicom-dict/dicom"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
)

func (c *cli) syntaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "syntax [uid]...",
		Short: "Describe transfer syntaxes",
		Long:  `Describes the transfer syntaxes with the given UIDs, or all known ones when no UID is given.`,
		RunE:  c.runSyntax,
	}
}

func (c *cli) runSyntax(cmd *cobra.Command, args []string) error {
	var l syntaxList
	if len(args) == 0 {
		for _, ts := range dicom.TransferSyntaxes() {
			l.TransferSyntaxes = append(l.TransferSyntaxes, newSyntaxRecord(ts))
		}
		return render(cmd.OutOrStdout(), c.format, l)
	}

	for _, uid := range args {
		ts, ok := dicom.LookupTransferSyntax(uid)
		if !ok {
			c.logger.Debug("Transfer syntax not found", zap.String("uid", uid))
			return fmt.Errorf("unknown transfer syntax %q", uid)
		}
		l.TransferSyntaxes = append(l.TransferSyntaxes, newSyntaxRecord(ts))
	}
	return render(cmd.OutOrStdout(), c.format, l)
}

func (c *cli) charsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charset [term]...",
		Short: "Describe Specific Character Set defined terms",
		Long: `Names the text encoding used for each Specific Character Set (0008,0005)
value, or for every supported defined term when none is given. A value with
code extensions separates its terms with backslashes, e.g. 'ISO 2022 IR 6\ISO 2022 IR 87'.
An empty value stands for the default character repertoire.`,
		RunE: c.runCharset,
	}
}

func (c *cli) runCharset(cmd *cobra.Command, args []string) error {
	terms := args
	if len(terms) == 0 {
		terms = dicom.CharacterSetTerms()
	}

	var l charsetList
	for _, term := range terms {
		coding, err := dicom.LookupEncoding(term)
		if err != nil {
			return err
		}
		name, err := htmlindex.Name(coding)
		if err != nil {
			return fmt.Errorf("naming encoding of %q: %w", term, err)
		}
		l.CharacterSets = append(l.CharacterSets, charsetRecord{Term: term, Encoding: name})
	}
	return render(cmd.OutOrStdout(), c.format, l)
}
