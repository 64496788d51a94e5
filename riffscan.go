package riffscan

import "time"

func nullTermStr(b []byte) string {
	return string(b[:clen(b)])
}

func clen(num []byte) int {
	for i := range num {
		if num[i] == 0 {
			return i
		}
	}

	return len(num)
}

// pcmDuration computes the play time of interleaved PCM16 samples.
func pcmDuration(numSamples int, sampleRate uint32, numChannels uint16) time.Duration {
	if sampleRate == 0 || numChannels == 0 {
		return 0
	}

	frames := numSamples / int(numChannels)

	return time.Duration(float64(frames) / float64(sampleRate) * float64(time.Second))
}
