// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"weblogstat/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	version = "dev"
)

// setupLog configures the global logger. In case a log file
// is configured, it is returned so the caller can close it.
func setupLog(conf *config.Main, stderr io.Writer) (*os.File, error) {
	zerolog.SetGlobalLevel(conf.ZerologLevel())
	var out io.Writer
	var logf *os.File
	if conf.LogPath != "" {
		var err error
		logf, err = os.OpenFile(conf.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize log file %s: %w", conf.LogPath, err)
		}
		out = logf

	} else {
		out = zerolog.ConsoleWriter{Out: stderr}
	}
	log.Logger = zerolog.New(out).With().
		Timestamp().
		Str("runId", uuid.New().String()).
		Logger()
	return logf, nil
}

func setup(confPath string) (*config.Main, *os.File) {
	conf, err := config.Load(confPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logf, err := setupLog(conf, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	return conf, logf
}

type cliArgs struct {
	srcURL      string
	confPath    string
	showVersion bool
}

// parseArgs processes command line arguments (without the program
// name). Usage is written to stderr on any error.
func parseArgs(progName string, args []string, stderr io.Writer) (*cliArgs, error) {
	var ans cliArgs
	fset := flag.NewFlagSet(progName, flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&ans.srcURL, "url", "", "URL (or a file path) of a CSV web log to analyze (required)")
	fset.StringVar(&ans.confPath, "conf", "", "path or URL of an optional JSON configuration")
	fset.BoolVar(&ans.showVersion, "version", false, "show version and exit")
	fset.Usage = func() {
		fmt.Fprintf(
			stderr,
			"Weblogstat - a utility for reporting image requests, browsers and hourly traffic of a web log\n\n"+
				"Usage:\n\t%s -url <location> [options]\n\nOptions:\n",
			progName,
		)
		fset.PrintDefaults()
		fmt.Fprintf(stderr, "\n%s", confHelpText)
	}
	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	if ans.showVersion {
		return &ans, nil
	}
	if ans.srcURL == "" {
		fmt.Fprintln(stderr, "missing required option -url")
		fset.Usage()
		return nil, errors.New("missing required option -url")
	}
	return &ans, nil
}

func main() {
	args, err := parseArgs(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)

	} else if err != nil {
		os.Exit(1)
	}
	if args.showVersion {
		fmt.Printf("weblogstat %s\n", version)
		return
	}

	conf, logf := setup(args.confPath)
	err = runReportAction(conf, args.srcURL, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create web log report")
	}
	if logf != nil {
		logf.Close()
	}
}
