package utils

import (
	"encoding/binary"
	"fmt"
	"os"
)

type wavHeader struct {
	RIFF       [4]byte
	Size       uint32
	WAVE       [4]byte
	Fmt        [4]byte
	FmtSize    uint32
	Format     uint16
	Channels   uint16
	SampleRate uint32
	ByteRate   uint32
	BlockAlign uint16
	Bits       uint16
	Data       [4]byte
	DataSize   uint32
}

// WriteWAV writes unit-range samples to filename as a mono 16-bit PCM
// RIFF/WAVE file. Samples outside [-1, 1] are clipped.
func WriteWAV(filename string, samples []float64, sampleRate int) error {

	pcm := make([]int16, len(samples))
	for i, v := range samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		pcm[i] = int16(v * 0x7fff)
	}

	dataSize := uint32(2 * len(pcm))
	header := wavHeader{
		RIFF:       [4]byte{'R', 'I', 'F', 'F'},
		Size:       36 + dataSize,
		WAVE:       [4]byte{'W', 'A', 'V', 'E'},
		Fmt:        [4]byte{'f', 'm', 't', ' '},
		FmtSize:    16,
		Format:     1, // PCM
		Channels:   1,
		SampleRate: uint32(sampleRate),
		ByteRate:   uint32(sampleRate * 2),
		BlockAlign: 2,
		Bits:       16,
		Data:       [4]byte{'d', 'a', 't', 'a'},
		DataSize:   dataSize,
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	if err := binary.Write(file, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("failed to write file: %v", err)
	}
	if err := binary.Write(file, binary.LittleEndian, pcm); err != nil {
		return fmt.Errorf("failed to write file: %v", err)
	}

	return nil
}
