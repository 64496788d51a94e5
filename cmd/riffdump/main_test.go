package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestWav(t *testing.T, samples []int16) string {
	t.Helper()

	body := make([]byte, 0, 2*len(samples))
	for _, s := range samples {
		body = binary.LittleEndian.AppendUint16(body, uint16(s))
	}

	payload := []byte("WAVE")
	payload = append(payload, "fmt "...)
	payload = binary.LittleEndian.AppendUint32(payload, 16)
	payload = binary.LittleEndian.AppendUint16(payload, 1)
	payload = binary.LittleEndian.AppendUint16(payload, 1)
	payload = binary.LittleEndian.AppendUint32(payload, 44100)
	payload = binary.LittleEndian.AppendUint32(payload, 88200)
	payload = binary.LittleEndian.AppendUint16(payload, 2)
	payload = binary.LittleEndian.AppendUint16(payload, 16)
	payload = append(payload, "data"...)
	payload = binary.LittleEndian.AppendUint32(payload, uint32(len(body)))
	payload = append(payload, body...)

	data := []byte("RIFF")
	data = binary.LittleEndian.AppendUint32(data, uint32(len(payload)))
	data = append(data, payload...)

	path := filepath.Join(t.TempDir(), "test.wav")

	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	return path
}

func TestNewRootCmdHasExpectedSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"dump", "info"}
	for _, name := range want {
		found := false

		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}

		if !found {
			t.Errorf("expected subcommand %q not found in root", name)
		}
	}
}

func TestNewRootCmdHasPersistentConfigFlag(t *testing.T) {
	root := NewRootCmd()
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("expected --config persistent flag to be registered")
	}

	if root.PersistentFlags().Lookup("log-level") == nil {
		t.Error("expected --log-level persistent flag to be registered")
	}
}

func TestSetupLoggerAppliesLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := context.Background()

	setupLogger("error")

	if slog.Default().Enabled(ctx, slog.LevelWarn) {
		t.Error("warn must be disabled at error level")
	}

	if !slog.Default().Enabled(ctx, slog.LevelError) {
		t.Error("error must be enabled at error level")
	}

	setupLogger("not-a-level")

	if !slog.Default().Enabled(ctx, slog.LevelInfo) {
		t.Error("unparsable level must fall back to info")
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		t.Error("unparsable level must not enable debug")
	}
}

func TestRunDumpPrintsFields(t *testing.T) {
	path := writeTestWav(t, []int16{1, 2})

	var out bytes.Buffer

	err := runDump(path, &out, 0)
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}

	checks := []string{
		`header.riff_id = "RIFF"`,
		`header.wave_id = "WAVE"`,
		"fmt.sample_rate = 44100",
		"data.samples = 2 samples",
	}

	for _, c := range checks {
		if !strings.Contains(out.String(), c) {
			t.Fatalf("expected output to contain %q\nfull output:\n%s", c, out.String())
		}
	}
}

func TestRunDumpSamplePreview(t *testing.T) {
	path := writeTestWav(t, []int16{7, 8, 9})

	var out bytes.Buffer

	err := runDump(path, &out, 2)
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}

	if !strings.Contains(out.String(), "sample preview: [7 8]") {
		t.Fatalf("expected capped sample preview, got:\n%s", out.String())
	}
}

func TestRunDumpMissingFile(t *testing.T) {
	var out bytes.Buffer

	err := runDump(filepath.Join(t.TempDir(), "missing.wav"), &out, 0)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRunInfoSummarizes(t *testing.T) {
	path := writeTestWav(t, []int16{1, 2, 3, 4})

	var out bytes.Buffer

	err := runInfo(path, &out)
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}

	checks := []string{
		"Container: RIFF/WAVE",
		"Format: tag 1, 1 channel(s), 44100 Hz, 16 bits",
		"Samples: 4",
	}

	for _, c := range checks {
		if !strings.Contains(out.String(), c) {
			t.Fatalf("expected output to contain %q\nfull output:\n%s", c, out.String())
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(LoadOptions{Defaults: DefaultConfig()})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected default log level %q", cfg.LogLevel)
	}

	if cfg.Dump.MaxSamples != 0 {
		t.Fatalf("unexpected default sample cap %d", cfg.Dump.MaxSamples)
	}
}
