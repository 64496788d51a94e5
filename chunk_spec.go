package riffscan

import "github.com/go-audio/riff"

// CIDList is the chunk ID for a LIST chunk. The remaining recognized IDs come
// from the riff package (riff.RiffID, riff.FmtID, riff.DataFormatID).
var CIDList = [4]byte{'L', 'I', 'S', 'T'}

// CIDInfo is the LIST sub-type ID for INFO metadata.
var CIDInfo = [4]byte{'I', 'N', 'F', 'O'}

// fieldDef is one entry of a chunk's ordered field table. Entries flagged
// fromHeader re-expose the tag and size already consumed by the chunk header
// read; they cost no body bytes.
type fieldDef struct {
	name       string
	ftype      FieldType
	fromHeader bool
}

// chunkTable is the ordered field layout for one chunk kind. Field order is
// decode order. listEntries marks the LIST table, whose fixed fields are
// followed by repeated (tag_id, text_size, text) records until the chunk
// body is exhausted.
type chunkTable struct {
	prefix      string
	fields      []fieldDef
	listEntries bool
}

var (
	// headerTable covers the outer container chunk. Its consumption is
	// governed by the global budget alone, never by a chunk budget.
	headerTable = chunkTable{
		prefix: "header",
		fields: []fieldDef{
			{name: "riff_id", ftype: TypeFourCC, fromHeader: true},
			{name: "riff_size", ftype: TypeU32, fromHeader: true},
			{name: "wave_id", ftype: TypeFourCC},
		},
	}

	fmtTable = chunkTable{
		prefix: "fmt",
		fields: []fieldDef{
			{name: "chunk_id", ftype: TypeFourCC, fromHeader: true},
			{name: "chunk_size", ftype: TypeU32, fromHeader: true},
			{name: "audio_format", ftype: TypeU16},
			{name: "num_channels", ftype: TypeU16},
			{name: "sample_rate", ftype: TypeU32},
			{name: "byte_rate", ftype: TypeU32},
			{name: "block_align", ftype: TypeU16},
			{name: "bits_per_sample", ftype: TypeU16},
			// Extension bytes past the fixed 16-byte body, if any.
			{name: "extra_bytes", ftype: TypeByteBlob},
		},
	}

	dataTable = chunkTable{
		prefix: "data",
		fields: []fieldDef{
			{name: "chunk_id", ftype: TypeFourCC, fromHeader: true},
			{name: "chunk_size", ftype: TypeU32, fromHeader: true},
			{name: "samples", ftype: TypeSampleBlock},
		},
	}

	listTable = chunkTable{
		prefix: "list",
		fields: []fieldDef{
			{name: "chunk_id", ftype: TypeFourCC, fromHeader: true},
			{name: "chunk_size", ftype: TypeU32, fromHeader: true},
			{name: "list_type", ftype: TypeFourCC},
		},
		listEntries: true,
	}

	// unknownTable is the fallback for unrecognized tags. The walker assigns
	// each instance an ordinal prefix (unknown0, unknown1, ...).
	unknownTable = chunkTable{
		fields: []fieldDef{
			{name: "chunk_id", ftype: TypeFourCC, fromHeader: true},
			{name: "chunk_size", ftype: TypeU32, fromHeader: true},
			{name: "raw_payload", ftype: TypeByteBlob},
		},
	}
)

// listEntryFields is the layout of one LIST sub-record. The text length
// comes from the record's own text_size field.
var listEntryFields = []fieldDef{
	{name: "tag_id", ftype: TypeFourCC},
	{name: "text_size", ftype: TypeU32},
	{name: "text", ftype: TypeText},
}

// tableFor resolves a chunk tag to its field table. The container tag is
// only recognized for the very first chunk; a repeated RIFF tag later in the
// stream falls through to the unknown-chunk table.
func tableFor(tag [4]byte, first bool, unknownIndex *int) chunkTable {
	switch {
	case first && tag == riff.RiffID:
		return headerTable
	case tag == riff.FmtID:
		return fmtTable
	case tag == riff.DataFormatID:
		return dataTable
	case tag == CIDList:
		return listTable
	default:
		table := unknownTable
		table.prefix = unknownPrefix(*unknownIndex)
		*unknownIndex++

		return table
	}
}
