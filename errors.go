package riffscan

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

var (
	// ErrTruncatedInput is returned when the byte source runs out before a
	// field's declared bytes were available.
	ErrTruncatedInput = errors.New("input truncated mid-field")
	// ErrBudgetExceeded is returned when a field, pad byte, or chunk header
	// would consume more bytes than the governing size budget allows.
	ErrBudgetExceeded = errors.New("declared size budget exceeded")
	// ErrUnconsumedBytes is returned when a chunk's field table finished
	// before the chunk's declared size was exhausted.
	ErrUnconsumedBytes = errors.New("leftover bytes in chunk body")
	// ErrMalformedPayload is returned when a chunk body cannot hold values of
	// its declared type, e.g. an odd byte count for 16-bit samples.
	ErrMalformedPayload = errors.New("malformed chunk payload")
	// ErrNotRiffWave is returned when the container/sub-format tags are not
	// RIFF/WAVE once the walk completes.
	ErrNotRiffWave = fmt.Errorf("not a RIFF/WAVE container: %w", riff.ErrFmtNotSupported)
)

// readError classifies a read failure: reader exhaustion means the input was
// truncated, anything else passes through.
func readError(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: %w", what, ErrTruncatedInput)
	}

	return fmt.Errorf("%s: %w", what, err)
}
