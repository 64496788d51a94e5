// Package riffscan decodes RIFF/WAVE containers with per-chunk field
// tables instead of hand-unrolled readers.
//
// Each recognized chunk kind (the outer RIFF header, fmt, data, LIST) has an
// ordered table of named, typed fields. Parse walks the byte stream one
// chunk at a time, decodes each field per its declared type, and enforces
// two byte budgets: the chunk's declared body size, which must be consumed
// exactly, and the container's declared size, which bounds every byte read
// after the outer header. Malformed containers fail fast with a classified
// error; there are no partial results.
//
// The output is a FieldStore mapping dotted paths such as "fmt.sample_rate"
// or "data.samples" to decoded values. Unrecognized chunks land under
// ordinal prefixes ("unknown0.raw_payload"). Typed views (FmtChunk,
// Metadata, File) and go-audio sample buffers can be assembled from a store.
//
// LIST chunks are decoded into their (tag, size, text) records rather than
// falling through to the raw-payload fallback, so INFO metadata comes out as
// typed fields.
//
// The package stops at the container's declared byte layout: samples are
// returned as raw little-endian signed 16-bit values with no resampling,
// channel de-interleaving, or format conversion.
package riffscan
