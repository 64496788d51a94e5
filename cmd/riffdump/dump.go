package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/riffscan"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print every decoded field of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], cmd.OutOrStdout(), activeCfg.Dump.MaxSamples)
		},
	}
}

func runDump(path string, out io.Writer, maxSamples int) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	store, err := riffscan.Parse(file)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	slog.Debug("parsed container", "path", path, "fields", len(store))

	for _, key := range store.Keys() {
		fmt.Fprintf(out, "%s = %s\n", key, store[key])
	}

	if maxSamples > 0 {
		if samples, ok := store.Samples("data.samples"); ok {
			if len(samples) > maxSamples {
				samples = samples[:maxSamples]
			}

			fmt.Fprintf(out, "sample preview: %v\n", samples)
		}
	}

	return nil
}
