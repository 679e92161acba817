package main

import (
	"flag"
	"log"
	"strings"

	"Wavesynth/internel/utils"
	"Wavesynth/pkg/device"
	"Wavesynth/pkg/wavelang"
)

// waverender renders a waveform spec offline into a .wav, .pcm (raw
// int32 frames) or .txt file, stopping early when the wave ends.
func main() {

	output := flag.String("o", "out.wav", "output file: .wav, .pcm or .txt")
	rate := flag.Int("rate", 44100, "sample rate")
	duration := flag.Float64("duration", 5, "maximum seconds to render")
	flag.Parse()

	spec := "sine(440)"
	if flag.NArg() >= 1 {
		spec = flag.Arg(0)
	}

	w, err := wavelang.Parse(spec)
	if err != nil {
		log.Fatalf("bad waveform spec: %v", err)
	}

	step := 1 / float64(*rate)
	total := int(*duration * float64(*rate))
	samples := make([]float64, 0, total)
	for range total {
		v, ok := w.Next(step)
		if !ok {
			break
		}
		samples = append(samples, v)
	}

	switch {
	case strings.HasSuffix(*output, ".txt"):
		err = utils.WriteTxt(*output, samples, func(v float64) float64 { return v })
	case strings.HasSuffix(*output, ".pcm"):
		err = utils.WriteBinary(*output, device.Float64ToInt32(samples))
	default:
		err = utils.WriteWAV(*output, samples, *rate)
	}
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %d samples to %s", len(samples), *output)
}
