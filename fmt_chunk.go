package riffscan

// FmtChunk is the typed view of a decoded fmt chunk: the fixed 16-byte body
// plus any extension bytes the chunk declared beyond it.
type FmtChunk struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	ExtraBytes    []byte
}

// Clone returns a deep copy.
func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f
	out.ExtraBytes = append([]byte(nil), f.ExtraBytes...)

	return &out
}

// FmtChunk assembles the typed fmt view from a parsed store, or nil when the
// container held no fmt chunk.
func (s FieldStore) FmtChunk() *FmtChunk {
	format, ok := s.U16("fmt.audio_format")
	if !ok {
		return nil
	}

	channels, _ := s.U16("fmt.num_channels")
	rate, _ := s.U32("fmt.sample_rate")
	byteRate, _ := s.U32("fmt.byte_rate")
	align, _ := s.U16("fmt.block_align")
	bits, _ := s.U16("fmt.bits_per_sample")
	extra, _ := s.Bytes("fmt.extra_bytes")

	return &FmtChunk{
		AudioFormat:   format,
		NumChannels:   channels,
		SampleRate:    rate,
		ByteRate:      byteRate,
		BlockAlign:    align,
		BitsPerSample: bits,
		ExtraBytes:    extra,
	}
}
