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

// Command dcmdict looks up DICOM attributes, transfer syntaxes and character sets.
//
//	dcmdict tag '(0010,0010)' 7FE00010
//	dcmdict keyword PatientName --format json
//	dcmdict search 'Patient*'
//	dcmdict syntax 1.2.840.10008.1.2
//	dcmdict charset 'ISO_IR 100'
package main

import (
	"fmt"
	"os"

	"github.com/dcmdict/go-dicom-dict/dicom"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds the state shared by all commands of one invocation.
type cli struct {
	// Global flags
	verbose        bool
	format         string
	dictionaryPath string

	logger *zap.Logger
	dict   *dicom.Dictionary
}

func newRootCmd() *cobra.Command {
	return (&cli{}).rootCmd()
}

// rootCmd builds the command tree. A logger already set on c is kept.
func (c *cli) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dcmdict",
		Short: "Look up the DICOM data dictionary",
		Long: `dcmdict answers questions about the DICOM standard registry of data elements
(PS3.6): which attribute a tag denotes, which tag a keyword stands for, and what
VR and VM an attribute has. It also lists the transfer syntaxes and specific
character sets a decoder needs alongside the dictionary.

Repeating group attributes such as Overlay Data (60xx,3000) match every group
in their range.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(c.format); err != nil {
				return err
			}
			if c.logger == nil {
				config := zap.NewProductionConfig()
				if c.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				c.logger = logger
			}
			return c.loadDictionary()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&c.format, "format", "f", formatText, "Output format: text, json, yaml or toml")
	rootCmd.PersistentFlags().StringVar(&c.dictionaryPath, "dictionary", "", "Data dictionary table to use instead of the built-in one")

	rootCmd.AddCommand(c.tagCmd())
	rootCmd.AddCommand(c.keywordCmd())
	rootCmd.AddCommand(c.searchCmd())
	rootCmd.AddCommand(c.infoCmd())
	rootCmd.AddCommand(c.exportCmd())
	rootCmd.AddCommand(c.syntaxCmd())
	rootCmd.AddCommand(c.charsetCmd())

	return rootCmd
}

func (c *cli) loadDictionary() error {
	if c.dictionaryPath == "" {
		c.dict = dicom.Default()
		c.logger.Debug("Using built-in data dictionary",
			zap.String("version", c.dict.Version()),
			zap.Int("entries", c.dict.Len()))
		return nil
	}

	f, err := os.Open(c.dictionaryPath)
	if err != nil {
		return fmt.Errorf("opening data dictionary: %w", err)
	}
	defer f.Close()

	dict, err := dicom.LoadDictionary(f)
	if err != nil {
		return fmt.Errorf("loading data dictionary %s: %w", c.dictionaryPath, err)
	}
	c.dict = dict
	c.logger.Info("Loaded data dictionary",
		zap.String("path", c.dictionaryPath),
		zap.String("version", dict.Version()),
		zap.Int("entries", dict.Len()),
		zap.String("fingerprint", fmt.Sprintf("%016x", dict.Fingerprint())))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
