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
	"strings"

	"github.com/dcmdict/go-dicom-dict/dicom"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxSuggestions bounds the keywords offered when a keyword lookup misses.
const maxSuggestions = 3

func (c *cli) tagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <tag>...",
		Short: "Describe the attributes with the given tags",
		Long: `Describes the attribute denoted by each tag. Tags may be written (gggg,eeee),
gggg,eeee, ggggeeee or 0xggggeeee. Group length and private creator elements are
described even though the dictionary does not list them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runTag,
	}
}

func (c *cli) runTag(cmd *cobra.Command, args []string) error {
	var entries []*dicom.DictionaryEntry
	for _, arg := range args {
		tag, err := dicom.ParseTag(arg)
		if err != nil {
			return err
		}

		e := c.dict.Find(tag)
		if e == nil {
			c.logger.Debug("Tag not found", zap.Stringer("tag", tag))
			return fmt.Errorf("no attribute with tag %v", tag)
		}
		c.logger.Debug("Tag found", zap.Stringer("tag", tag), zap.String("pattern", e.Pattern()))
		entries = append(entries, e)
	}
	return render(cmd.OutOrStdout(), c.format, newEntryList(entries))
}

func (c *cli) keywordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keyword <keyword>...",
		Short: "Describe the attributes with the given keywords",
		Long: `Describes the attribute named by each keyword. Keywords are case sensitive;
when one is not found the closest keywords are suggested.`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runKeyword,
	}
}

func (c *cli) runKeyword(cmd *cobra.Command, args []string) error {
	var entries []*dicom.DictionaryEntry
	for _, keyword := range args {
		e, ok := c.dict.ByName(keyword)
		if !ok {
			suggestions := c.dict.Suggest(keyword, maxSuggestions)
			c.logger.Debug("Keyword not found",
				zap.String("keyword", keyword),
				zap.Strings("suggestions", suggestions))
			if len(suggestions) == 0 {
				return fmt.Errorf("unknown keyword %q", keyword)
			}
			return fmt.Errorf("unknown keyword %q, did you mean %s?", keyword, strings.Join(suggestions, ", "))
		}
		entries = append(entries, e)
	}
	return render(cmd.OutOrStdout(), c.format, newEntryList(entries))
}

func (c *cli) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <pattern>",
		Short: "List the attributes whose keyword matches a glob pattern",
		Long: `Lists the attributes whose keyword matches the pattern, ordered by tag.
Patterns support *, ?, [class] and {alt1,alt2}, e.g. 'Patient*' or '*{Date,Time}'.`,
		Args: cobra.ExactArgs(1),
		RunE: c.runSearch,
	}
}

func (c *cli) runSearch(cmd *cobra.Command, args []string) error {
	entries, err := c.dict.Match(args[0])
	if err != nil {
		return err
	}
	c.logger.Debug("Searched keywords", zap.String("pattern", args[0]), zap.Int("matches", len(entries)))
	if len(entries) == 0 {
		return fmt.Errorf("no keyword matches %q", args[0])
	}
	return render(cmd.OutOrStdout(), c.format, newEntryList(entries))
}
