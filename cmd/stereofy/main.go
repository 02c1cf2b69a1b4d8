// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jessevdk/go-flags"

	"github.com/ik5/stereofy"
	"github.com/ik5/stereofy/internal/config"
	"github.com/ik5/stereofy/internal/logging"
)

const usage = "Usage: stereofy --input wavefile.wav --output output.wav"

type options struct {
	Input  string `short:"i" long:"input" description:"audio file to convert"`
	Output string `short:"o" long:"output" description:"16-bit PCM WAV file to write"`
}

func (o *options) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Input, validation.Required),
		validation.Field(&o.Output, validation.Required),
	)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	parser := flags.NewParser(&opts, flags.IgnoreUnknown|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	if err := opts.Validate(); err != nil {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	conf, err := config.New()
	if err != nil {
		fmt.Fprintf(stderr, "stereofy: invalid environment: %v\n", err)
		return 1
	}

	level, err := logging.ParseLevel(conf.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "stereofy: %v\n", err)
		return 1
	}

	log := logging.New(stderr, conf.LogFormat, level)

	stats, err := stereofy.ConvertFile(opts.Input, opts.Output, stdout)
	if err != nil {
		log.Error().
			Err(err).
			Str("input", opts.Input).
			Str("output", opts.Output).
			Msg("conversion failed")
		return 1
	}

	if stats.Clipped > 0 {
		log.Warn().
			Int64("clipped", stats.Clipped).
			Msg("samples clamped to [-1, 1]")
	}

	log.Debug().
		Int64("frames", stats.Frames).
		Int64("samples", stats.Samples).
		Str("encoding", stats.Encoding.String()).
		Str("output", opts.Output).
		Msg("conversion finished")

	return 0
}
