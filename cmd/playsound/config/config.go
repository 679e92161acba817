package config

import (
	"fmt"
	"os"

	"Wavesynth/pkg/device"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Device struct {
		Backend    string  `yaml:"backend"`     // oto, portaudio or asio
		DeviceName string  `yaml:"device_name"` // asio only
		SampleRate float64 `yaml:"sample_rate"`
		Amplitude  float64 `yaml:"amplitude"`
	} `yaml:"device"`
}

// Default is the configuration used when no config file is given:
// the portable oto backend at 44.1kHz.
func Default() *Config {
	var config Config
	config.Device.Backend = "oto"
	config.Device.SampleRate = 44100
	config.Device.Amplitude = 0.8
	return &config
}

func LoadConfig(filename string) (*Config, error) {
	config := Default()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func CreateDevice(config *Config) (device.Device, error) {
	switch config.Device.Backend {
	case "oto":
		return &device.OtoMono{
			SampleRate: config.Device.SampleRate,
		}, nil
	case "portaudio":
		return &device.PortAudioMono{
			SampleRate: config.Device.SampleRate,
		}, nil
	case "asio":
		return &device.ASIOMono{
			DeviceName: config.Device.DeviceName,
			SampleRate: config.Device.SampleRate,
		}, nil
	}
	return nil, fmt.Errorf("unknown audio backend %q", config.Device.Backend)
}
