package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wonst719/zx0/decoder"
)

type decompressOptions struct {
	skip    int
	reverse bool
	force   bool
}

func newDecompressCmd() *cobra.Command {
	opts := &decompressOptions{}

	cmd := &cobra.Command{
		Use:   "decompress <input> [output]",
		Short: "Decompress a ZX0-format file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := defaultDecompressedOutput(input)
			if len(args) > 1 {
				output = args[1]
			}
			return runDecompress(input, output, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.skip, "skip", "s", 0, "bytes at the start of input that were copied through uncompressed")
	flags.BoolVarP(&opts.reverse, "reverse", "r", false, "reverse input before and output after decompression")
	flags.BoolVarP(&opts.force, "force", "f", false, "overwrite output without confirmation")

	return cmd
}

func runDecompress(input, output string, opts *decompressOptions) error {
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
	if opts.skip > len(data) {
		return errors.Errorf("skip %d exceeds input length %d", opts.skip, len(data))
	}
	prefix, compressed := data[:opts.skip], data[opts.skip:]

	decoded, err := decoder.Decode(compressed)
	if err != nil {
		return errors.Wrap(err, "decode")
	}

	out := append(append([]byte{}, prefix...), decoded...)
	if opts.reverse {
		out = reverseBytes(out)
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", output)
	}

	log.WithFields(log.Fields{
		"input_bytes":  len(data),
		"output_bytes": len(out),
	}).Info("decompressed")
	return nil
}
