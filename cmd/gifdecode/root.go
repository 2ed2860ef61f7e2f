// Package main is the gifdecode command line: a thin cobra front end over
// the gifdecoder/compositor packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Diesel-Hadez/gif-me-hd/internal/config"
	"github.com/Diesel-Hadez/gif-me-hd/internal/gifxlog"
)

var (
	verbose      bool
	strict       bool
	configPath   string
	needStackTrace = false
)

var rootCmd = &cobra.Command{
	Use:   "gifdecode",
	Short: "A GIF87a/GIF89a decoder and frame extractor",
	Long: `gifdecode parses GIF image streams and composites their frames.

It supports:
- Structural inspection of a GIF's header, screen descriptor, and frames
- Extracting every frame as a fully composited PPM or PNG image
- Batch processing of many files via a --manifest JSON file`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "turn on debug logging")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject malformed records instead of coercing them")
	rootCmd.PersistentFlags().StringVarP(&configPath, "conf", "c", "", "path to a YAML configuration file")
}

func initLogging() {
	needStackTrace = verbose
	if verbose {
		gifxlog.SetDefaultLoggers()
	}
}

func loadConfig() *config.Configuration {
	if configPath == "" {
		c := config.NewDefaultConfiguration()
		c.Strict = strict
		return c
	}
	c, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gifdecode: %v\n", err)
		os.Exit(1)
	}
	if strict {
		c.Strict = true
	}
	return c
}

func fail(err error) {
	if needStackTrace {
		fmt.Fprintf(os.Stderr, "gifdecode: %+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "gifdecode: %v\n", err)
	}
	os.Exit(1)
}
