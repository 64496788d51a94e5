// This tool writes a small PCM16 sine-wave WAV for exercising the dump
// tools and tests.
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-testwav", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 1, "length in seconds of output file")
	sampleRate := flagSet.Int("rate", 44100, "sample rate in hertz")
	software := flagSet.String("software", "", "optional ISFT tag written as a LIST/INFO chunk")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	err = writeWav(w, *frequency, *length, *sampleRate, *software)
	if err != nil {
		return err
	}

	return w.Flush()
}

func writeWav(w io.Writer, frequency, length float64, sampleRate int, software string) error {
	numSamples := int(float64(sampleRate) * length)
	listBody := infoBody(software)

	riffSize := 4 + (8 + 16) + (8 + 2*numSamples)
	if listBody != nil {
		riffSize += 8 + len(listBody)
	}

	if _, err := w.Write([]byte("RIFF")); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(riffSize)); err != nil {
		return err
	}

	if _, err := w.Write([]byte("WAVE")); err != nil {
		return err
	}

	if err := writeFmtChunk(w, sampleRate); err != nil {
		return err
	}

	if listBody != nil {
		if _, err := w.Write([]byte("LIST")); err != nil {
			return err
		}

		if err := binary.Write(w, binary.LittleEndian, uint32(len(listBody))); err != nil {
			return err
		}

		if _, err := w.Write(listBody); err != nil {
			return err
		}
	}

	if _, err := w.Write([]byte("data")); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(2*numSamples)); err != nil {
		return err
	}

	for i := 0; i < numSamples; i++ {
		fv := math.Sin(float64(i) / float64(sampleRate) * frequency * 2 * math.Pi)
		sample := int16(math.Round(fv * 32767))

		if err := binary.Write(w, binary.LittleEndian, sample); err != nil {
			return err
		}
	}

	return nil
}

func writeFmtChunk(w io.Writer, sampleRate int) error {
	const (
		pcmFormat     = 1
		channels      = 1
		bitsPerSample = 16
		blockAlign    = channels * bitsPerSample / 8
	)

	if _, err := w.Write([]byte("fmt ")); err != nil {
		return err
	}

	fields := []any{
		uint32(16),
		uint16(pcmFormat),
		uint16(channels),
		uint32(sampleRate),
		uint32(sampleRate * blockAlign),
		uint16(blockAlign),
		uint16(bitsPerSample),
	}

	for _, field := range fields {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return err
		}
	}

	return nil
}

// infoBody builds a LIST/INFO body holding a single NUL-terminated ISFT
// entry, padded to even length.
func infoBody(software string) []byte {
	if software == "" {
		return nil
	}

	text := append([]byte(software), 0x00)

	body := []byte("INFO")
	body = append(body, "ISFT"...)
	body = binary.LittleEndian.AppendUint32(body, uint32(len(text)))
	body = append(body, text...)

	if len(text)%2 == 1 {
		body = append(body, 0x00)
	}

	return body
}
