package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/riffscan"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize format, duration, and metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0], cmd.OutOrStdout())
		},
	}
}

func runInfo(path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	file, err := riffscan.ParseFile(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	fmt.Fprintf(out, "Container: %s/%s, %d declared bytes\n",
		file.Header.RiffID[:], file.Header.WaveID[:], file.Header.Size)

	if file.Fmt != nil {
		fmt.Fprintf(out, "Format: tag %d, %d channel(s), %d Hz, %d bits\n",
			file.Fmt.AudioFormat, file.Fmt.NumChannels, file.Fmt.SampleRate, file.Fmt.BitsPerSample)
		fmt.Fprintf(out, "ByteRate: %d, BlockAlign: %d\n", file.Fmt.ByteRate, file.Fmt.BlockAlign)
	} else {
		fmt.Fprintln(out, "No fmt chunk present")
	}

	fmt.Fprintf(out, "Samples: %d (%s)\n", len(file.Samples), file.Duration())

	if file.Metadata != nil {
		fmt.Fprintf(out, "Artist: %s\n", file.Metadata.Artist)
		fmt.Fprintf(out, "Title: %s\n", file.Metadata.Title)
		fmt.Fprintf(out, "Software: %s\n", file.Metadata.Software)
		fmt.Fprintf(out, "Comments: %s\n", file.Metadata.Comments)
	}

	for _, raw := range file.Raw {
		fmt.Fprintf(out, "Unhandled chunk %q: %d bytes\n", raw.ID[:], raw.Size)
	}

	return nil
}
