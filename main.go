package main

import (
	"time"

	"github.com/faiface/beep"
	"github.com/jsphweid/guitarguide/audio/device"
	"github.com/jsphweid/guitarguide/cmd"
)

func main() {
	cmd.OpenDevice = func(sr beep.SampleRate, buffer time.Duration) (cmd.Device, error) {
		s, err := device.Open(sr, buffer)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	cmd.Execute()
}
