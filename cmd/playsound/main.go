package main

import (
	"flag"
	"log"

	"Wavesynth/cmd/playsound/config"
	"Wavesynth/internel/callbacks"
	"Wavesynth/pkg/async"
	"Wavesynth/pkg/wavelang"
)

func main() {

	configPath := flag.String("config", "", "YAML config file, defaults apply when empty")
	flag.Parse()

	spec := "sine(440)"
	if flag.NArg() >= 1 {
		spec = flag.Arg(0)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	w, err := wavelang.Parse(spec)
	if err != nil {
		log.Fatalf("bad waveform spec: %v", err)
	}

	player := &callbacks.Player{
		Wave:      w,
		Step:      1 / cfg.Device.SampleRate,
		Amplitude: cfg.Device.Amplitude,
	}
	done := player.Done.Signal()

	dev, err := config.CreateDevice(cfg)
	if err != nil {
		log.Fatal(err)
	}
	dev.Start(player.Update)
	defer dev.Stop()

	log.Printf("playing %q via %s at %.0f Hz, press enter to stop", spec, cfg.Device.Backend, cfg.Device.SampleRate)
	async.Await0(async.Job(func() {
		select {
		case <-done:
			log.Print("playback finished")
		case <-async.EnterKey():
			log.Print("stopped")
		}
	}))
}
