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

	"github.com/spf13/cobra"
)

func (c *cli) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarize the data dictionary in use",
		Args:  cobra.NoArgs,
		RunE:  c.runInfo,
	}
}

func (c *cli) runInfo(cmd *cobra.Command, args []string) error {
	r := infoRecord{
		Source:      "built-in",
		Version:     c.dict.Version(),
		Entries:     c.dict.Len(),
		Fingerprint: fmt.Sprintf("%016x", c.dict.Fingerprint()),
	}
	if c.dictionaryPath != "" {
		r.Source = c.dictionaryPath
	}
	for _, e := range c.dict.Entries() {
		if e.IsRepeating() {
			r.Repeating++
		}
		if e.Retired {
			r.Retired++
		}
	}
	return render(cmd.OutOrStdout(), c.format, r)
}

func (c *cli) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the data dictionary in use as a table",
		Long: `Writes the data dictionary as a tab separated table that --dictionary accepts.
The --format flag does not apply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.dict.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
