package riffscan

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// chunkHeaderSize is the byte cost of a tag + size chunk header.
const chunkHeaderSize = 8

// Parse walks a RIFF/WAVE container one chunk at a time, decoding every
// chunk body against its field table, and returns the resulting store.
//
// Two byte budgets govern the walk: the global budget, initialized from the
// declared outer chunk size and charged for every byte consumed after the
// outer header (field bytes, pad bytes, inner chunk headers), and a
// per-chunk budget, initialized from each inner chunk's declared size and
// required to hit exactly zero once the chunk's table is exhausted. Any
// attempt to consume past either budget aborts the parse.
//
// The reader is consumed strictly forward and never rewound. Parse reads
// exactly the declared container, leaving the reader positioned right after
// it on success.
func Parse(r io.Reader) (FieldStore, error) {
	w := &walker{r: r, store: make(FieldStore)}

	tag, size, err := readChunkHeader(r)
	if err != nil {
		return nil, err
	}

	w.remainingGlobal = size

	// Every chunk whose header was read gets decoded, including a trailing
	// chunk with an empty body whose header lands exactly on the budget edge.
	first := true
	for {
		table := tableFor(tag, first, &w.unknownIndex)
		first = false

		err := w.decodeChunk(table, tag, size)
		if err != nil {
			return nil, err
		}

		if w.remainingGlobal == 0 {
			break
		}

		if w.remainingGlobal < chunkHeaderSize {
			return nil, fmt.Errorf(
				"%w: next chunk header needs %d bytes, container has %d left",
				ErrBudgetExceeded, chunkHeaderSize, w.remainingGlobal)
		}

		tag, size, err = readChunkHeader(r)
		if err != nil {
			return nil, err
		}

		w.remainingGlobal -= chunkHeaderSize
	}

	riffID, ok := w.store.FourCC("header.riff_id")
	if !ok || riffID != riff.RiffID {
		return nil, ErrNotRiffWave
	}

	waveID, ok := w.store.FourCC("header.wave_id")
	if !ok || waveID != riff.WavFormatID {
		return nil, ErrNotRiffWave
	}

	return w.store, nil
}

type walker struct {
	r               io.Reader
	store           FieldStore
	remainingGlobal uint32
	unknownIndex    int
}

// decodeChunk decodes one chunk body against its table, then enforces exact
// consumption and word alignment for every chunk but the outer container.
func (w *walker) decodeChunk(table chunkTable, tag [4]byte, size uint32) error {
	remaining := size

	for _, field := range table.fields {
		if field.fromHeader {
			w.storeHeaderField(table.prefix, field, tag, size)
			continue
		}

		var err error

		remaining, err = w.decodeOne(table.prefix, field, remaining, 0)
		if err != nil {
			return err
		}
	}

	if table.listEntries {
		var err error

		remaining, err = w.decodeListEntries(table.prefix, remaining)
		if err != nil {
			return err
		}
	}

	// The outer chunk is bounded by the global budget alone.
	if table.prefix == headerTable.prefix {
		return nil
	}

	if remaining != 0 {
		return fmt.Errorf("%w: chunk %s has %d undecoded bytes",
			ErrUnconsumedBytes, table.prefix, remaining)
	}

	if size%2 == 1 {
		return w.consumePadByte(table.prefix)
	}

	return nil
}

// decodeOne decodes a single field, charging its cost to both budgets and
// storing the value under the chunk's prefix.
func (w *walker) decodeOne(prefix string, field fieldDef, remaining, textLen uint32) (uint32, error) {
	cost, err := fieldCost(field.ftype, remaining, textLen)
	if err != nil {
		return remaining, fmt.Errorf("field %s.%s: %w", prefix, field.name, err)
	}

	if cost > w.remainingGlobal {
		return remaining, fmt.Errorf(
			"%w: field %s.%s needs %d bytes, container has %d left",
			ErrBudgetExceeded, prefix, field.name, cost, w.remainingGlobal)
	}

	value, left, err := decodeField(w.r, field.ftype, remaining, textLen)
	if err != nil {
		return remaining, fmt.Errorf("field %s.%s: %w", prefix, field.name, err)
	}

	w.remainingGlobal -= cost
	w.store[prefix+"."+field.name] = value

	return left, nil
}

// storeHeaderField re-exposes the already-consumed chunk tag or size as a
// named field at zero byte cost.
func (w *walker) storeHeaderField(prefix string, field fieldDef, tag [4]byte, size uint32) {
	key := prefix + "." + field.name

	if field.ftype == TypeFourCC {
		w.store[key] = fourCCValue(tag)
		return
	}

	w.store[key] = u32Value(size)
}

// decodeListEntries walks the repeated (tag_id, text_size, text) records of
// a LIST body. Records repeat while a full 8-byte record header still fits
// in the chunk budget; a smaller nonzero leftover is reported by the caller
// as unconsumed bytes.
func (w *walker) decodeListEntries(prefix string, remaining uint32) (uint32, error) {
	for i := 0; remaining >= chunkHeaderSize; i++ {
		entryPrefix := fmt.Sprintf("%s.entry%d", prefix, i)

		var err error

		remaining, err = w.decodeOne(entryPrefix, listEntryFields[0], remaining, 0)
		if err != nil {
			return remaining, err
		}

		remaining, err = w.decodeOne(entryPrefix, listEntryFields[1], remaining, 0)
		if err != nil {
			return remaining, err
		}

		textLen, _ := w.store.U32(entryPrefix + "." + listEntryFields[1].name)

		remaining, err = w.decodeOne(entryPrefix, listEntryFields[2], remaining, textLen)
		if err != nil {
			return remaining, err
		}
	}

	return remaining, nil
}

// consumePadByte skips the single alignment byte that follows any chunk with
// an odd declared size, charging it to the global budget.
func (w *walker) consumePadByte(prefix string) error {
	if w.remainingGlobal == 0 {
		return fmt.Errorf("%w: no bytes left for chunk %s pad byte",
			ErrBudgetExceeded, prefix)
	}

	var pad [1]byte
	if _, err := io.ReadFull(w.r, pad[:]); err != nil {
		return readError(err, "chunk "+prefix+" pad byte")
	}

	w.remainingGlobal--

	return nil
}

// readChunkHeader reads an 8-byte chunk header: a 4-byte tag followed by a
// little-endian u32 body size.
func readChunkHeader(r io.Reader) ([4]byte, uint32, error) {
	var buf [chunkHeaderSize]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return [4]byte{}, 0, readError(err, "chunk header")
	}

	var tag [4]byte
	copy(tag[:], buf[:4])

	return tag, binary.LittleEndian.Uint32(buf[4:]), nil
}

func unknownPrefix(i int) string {
	return fmt.Sprintf("unknown%d", i)
}
