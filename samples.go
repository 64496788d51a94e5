package riffscan

import "github.com/go-audio/audio"

const scalePCMInt16 = 32768.0

// IntBuffer returns the decoded PCM16 samples as a go-audio buffer, or nil
// when the container held no data chunk. The format is taken from the fmt
// chunk when present.
func (s FieldStore) IntBuffer() *audio.IntBuffer {
	samples, ok := s.Samples("data.samples")
	if !ok {
		return nil
	}

	data := make([]int, len(samples))
	for i, sample := range samples {
		data[i] = int(sample)
	}

	return &audio.IntBuffer{
		Data:           data,
		Format:         s.bufferFormat(),
		SourceBitDepth: 16,
	}
}

// Float32Buffer returns the decoded PCM16 samples normalized to [-1, 1), or
// nil when the container held no data chunk.
func (s FieldStore) Float32Buffer() *audio.Float32Buffer {
	samples, ok := s.Samples("data.samples")
	if !ok {
		return nil
	}

	data := make([]float32, len(samples))
	for i, sample := range samples {
		data[i] = float32(float64(sample) / scalePCMInt16)
	}

	return &audio.Float32Buffer{
		Data:           data,
		Format:         s.bufferFormat(),
		SourceBitDepth: 16,
	}
}

func (s FieldStore) bufferFormat() *audio.Format {
	fmtChunk := s.FmtChunk()
	if fmtChunk == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(fmtChunk.NumChannels),
		SampleRate:  int(fmtChunk.SampleRate),
	}
}
