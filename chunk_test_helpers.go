package riffscan

import "encoding/binary"

// Helpers for assembling synthetic containers in tests. Declared sizes are
// computed from the payloads, including alignment pad bytes, so the built
// streams are well formed unless a test corrupts them on purpose.

type testChunk struct {
	id   string
	body []byte
}

func appendUint32LE(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

func chunkBytes(c testChunk) []byte {
	out := make([]byte, 0, chunkHeaderSize+len(c.body)+1)
	out = append(out, c.id...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(c.body)))
	out = append(out, c.body...)

	if len(c.body)%2 == 1 {
		out = append(out, 0x00)
	}

	return out
}

func containerBytes(chunks ...testChunk) []byte {
	payload := []byte("WAVE")
	for _, c := range chunks {
		payload = append(payload, chunkBytes(c)...)
	}

	out := make([]byte, 0, chunkHeaderSize+len(payload))
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)

	return out
}

func fmtBody(format, channels uint16, rate uint32, bits uint16, extra []byte) []byte {
	blockAlign := channels * bits / 8
	byteRate := rate * uint32(blockAlign)

	out := make([]byte, 0, 16+len(extra))
	out = binary.LittleEndian.AppendUint16(out, format)
	out = binary.LittleEndian.AppendUint16(out, channels)
	out = binary.LittleEndian.AppendUint32(out, rate)
	out = binary.LittleEndian.AppendUint32(out, byteRate)
	out = binary.LittleEndian.AppendUint16(out, blockAlign)
	out = binary.LittleEndian.AppendUint16(out, bits)

	return append(out, extra...)
}

func pcmBody(samples ...int16) []byte {
	out := make([]byte, 0, 2*len(samples))
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}

	return out
}

type testListEntry struct {
	id   string
	text string
}

func listInfoBody(entries ...testListEntry) []byte {
	out := []byte("INFO")

	for _, e := range entries {
		out = append(out, e.id...)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(e.text)))
		out = append(out, e.text...)

		if len(e.text)%2 == 1 {
			out = append(out, 0x00)
		}
	}

	return out
}

// minimalWavBytes builds the canonical 44-byte container: RIFF/WAVE header,
// 16-byte PCM fmt body, empty data chunk.
func minimalWavBytes() []byte {
	return containerBytes(
		testChunk{id: "fmt ", body: fmtBody(1, 1, 44100, 16, nil)},
		testChunk{id: "data"},
	)
}
