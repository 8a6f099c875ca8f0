package main

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wonst719/zx0/encoder"
	"github.com/wonst719/zx0/optimizer"
)

type compressOptions struct {
	skip    int
	quick   bool
	threads int
	verbose bool
	reverse bool
	force   bool
	output  string
}

func newCompressCmd() *cobra.Command {
	opts := &compressOptions{threads: runtime.NumCPU()}

	cmd := &cobra.Command{
		Use:   "compress <input> [output]",
		Short: "Compress a file into the ZX0 format",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := opts.output
			if len(args) > 1 {
				output = args[1]
			}
			if output == "" {
				output = defaultCompressedOutput(input)
			}
			return runCompress(input, output, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.skip, "skip", "s", 0, "bytes to copy through uncompressed")
	flags.BoolVarP(&opts.quick, "quick", "q", false, "use the reduced (quick) maximum offset")
	flags.IntVarP(&opts.threads, "threads", "t", opts.threads, "number of offsets to scan concurrently")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print a progress bar while searching")
	flags.BoolVarP(&opts.reverse, "reverse", "r", false, "reverse input before and output after compression")
	flags.BoolVarP(&opts.force, "force", "f", false, "overwrite output without confirmation")

	return cmd
}

func runCompress(input, output string, opts *compressOptions) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrapf(err, "read %s", input)
	}

	ok, err := confirmOverwrite(output, opts.force)
	if err != nil {
		return err
	}
	if !ok {
		log.Info("aborted: output exists")
		return nil
	}

	if opts.reverse {
		data = reverseBytes(data)
	}

	offsetLimit := optimizer.OffsetLimitFull
	if opts.quick {
		offsetLimit = optimizer.OffsetLimitQuick
	}

	terminal, err := optimizer.Optimize(data, opts.skip, offsetLimit, opts.threads, opts.verbose)
	if err != nil {
		return errors.Wrap(err, "optimize")
	}

	stream, err := encoder.Encode(data, opts.skip, terminal)
	if err != nil {
		return errors.Wrap(err, "encode")
	}

	out := append(append([]byte{}, data[:opts.skip]...), stream...)
	if opts.reverse {
		out = reverseBytes(out)
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", output)
	}

	log.WithFields(log.Fields{
		"input_bytes":  len(data),
		"output_bytes": len(out),
	}).Info("compressed")
	return nil
}
