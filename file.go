package riffscan

import (
	"io"
	"time"
)

// Header is the outer container header.
type Header struct {
	RiffID [4]byte
	Size   uint32
	WaveID [4]byte
}

// RawChunk preserves the payload of an unrecognized chunk. Order is the
// ordinal among unrecognized chunks, matching the unknownN store prefix.
type RawChunk struct {
	ID    [4]byte
	Size  uint32
	Data  []byte
	Order int
}

// Clone returns a deep copy.
func (c RawChunk) Clone() RawChunk {
	out := c
	out.Data = append([]byte(nil), c.Data...)

	return out
}

// File is the typed view of a fully parsed container.
type File struct {
	Header   Header
	Fmt      *FmtChunk
	Metadata *Metadata
	Samples  []int16
	Raw      []RawChunk
}

// ParseFile parses a container and assembles the typed view.
func ParseFile(r io.Reader) (*File, error) {
	store, err := Parse(r)
	if err != nil {
		return nil, err
	}

	return store.File(), nil
}

// File assembles the typed view of a parsed store.
func (s FieldStore) File() *File {
	f := &File{
		Fmt:      s.FmtChunk(),
		Metadata: s.Metadata(),
		Raw:      s.RawChunks(),
	}

	f.Header.RiffID, _ = s.FourCC("header.riff_id")
	f.Header.Size, _ = s.U32("header.riff_size")
	f.Header.WaveID, _ = s.FourCC("header.wave_id")
	f.Samples, _ = s.Samples("data.samples")

	return f
}

// RawChunks returns the payloads of every unrecognized chunk in stream
// order.
func (s FieldStore) RawChunks() []RawChunk {
	var chunks []RawChunk

	for i := 0; ; i++ {
		prefix := unknownPrefix(i)

		id, ok := s.FourCC(prefix + ".chunk_id")
		if !ok {
			break
		}

		size, _ := s.U32(prefix + ".chunk_size")
		data, _ := s.Bytes(prefix + ".raw_payload")

		chunks = append(chunks, RawChunk{ID: id, Size: size, Data: data, Order: i})
	}

	return chunks
}

// Duration returns the play time of the decoded sample data, or zero when
// the format information needed to compute it is missing.
func (f *File) Duration() time.Duration {
	if f == nil || f.Fmt == nil {
		return 0
	}

	return pcmDuration(len(f.Samples), f.Fmt.SampleRate, f.Fmt.NumChannels)
}
