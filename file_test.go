package riffscan

import (
	"bytes"
	"testing"
	"time"
)

func TestParseFileTypedView(t *testing.T) {
	data := containerBytes(
		testChunk{id: "fmt ", body: fmtBody(1, 2, 48000, 16, nil)},
		testChunk{id: "LIST", body: listInfoBody(
			testListEntry{id: "INAM", text: "title\x00"},
		)},
		testChunk{id: "xtra", body: []byte{0xde, 0xad}},
		testChunk{id: "data", body: pcmBody(1, -1, 2, -2)},
	)

	file, err := ParseFile(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if string(file.Header.RiffID[:]) != "RIFF" || string(file.Header.WaveID[:]) != "WAVE" {
		t.Fatalf("unexpected header %+v", file.Header)
	}

	if file.Fmt == nil || file.Fmt.NumChannels != 2 || file.Fmt.SampleRate != 48000 {
		t.Fatalf("unexpected fmt view %+v", file.Fmt)
	}

	if file.Fmt.ByteRate != 48000*4 || file.Fmt.BlockAlign != 4 {
		t.Fatalf("unexpected derived fmt fields %+v", file.Fmt)
	}

	if file.Metadata == nil || file.Metadata.Title != "title" {
		t.Fatalf("unexpected metadata %+v", file.Metadata)
	}

	if len(file.Samples) != 4 || file.Samples[1] != -1 {
		t.Fatalf("unexpected samples %v", file.Samples)
	}

	if len(file.Raw) != 1 || string(file.Raw[0].ID[:]) != "xtra" || file.Raw[0].Order != 0 {
		t.Fatalf("unexpected raw chunks %+v", file.Raw)
	}
}

func TestFileDuration(t *testing.T) {
	data := containerBytes(
		testChunk{id: "fmt ", body: fmtBody(1, 2, 4, 16, nil)},
		testChunk{id: "data", body: pcmBody(make([]int16, 16)...)},
	)

	file, err := ParseFile(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	// 16 interleaved samples over 2 channels at 4 Hz.
	if dur := file.Duration(); dur != 2*time.Second {
		t.Fatalf("expected 2s, got %s", dur)
	}
}

func TestFileDurationWithoutFmt(t *testing.T) {
	data := containerBytes(testChunk{id: "data", body: pcmBody(1, 2)})

	file, err := ParseFile(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if file.Fmt != nil {
		t.Fatalf("expected no fmt view, got %+v", file.Fmt)
	}

	if dur := file.Duration(); dur != 0 {
		t.Fatalf("expected zero duration, got %s", dur)
	}
}

func TestFmtChunkClone(t *testing.T) {
	orig := &FmtChunk{SampleRate: 8000, ExtraBytes: []byte{1, 2}}

	clone := orig.Clone()
	clone.ExtraBytes[0] = 9

	if orig.ExtraBytes[0] != 1 {
		t.Fatal("clone must not share extra bytes")
	}

	var nilChunk *FmtChunk
	if nilChunk.Clone() != nil {
		t.Fatal("nil clone must stay nil")
	}
}

func TestRawChunkClone(t *testing.T) {
	orig := RawChunk{ID: [4]byte{'x', 't', 'r', 'a'}, Size: 2, Data: []byte{1, 2}}

	clone := orig.Clone()
	clone.Data[0] = 9

	if orig.Data[0] != 1 {
		t.Fatal("clone must not share payload")
	}
}
