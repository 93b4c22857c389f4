package constants

import "time"

// standard tuning, low E first
var OpenStringFreqs = [6]float64{82.41, 110, 146.83, 196, 246.94, 329.63}
var OpenStringKeys = [6]uint8{40, 45, 50, 55, 59, 64}

const SemitonesPerOctave = 12

// highest fret a transposed shape may reach
const MaxFret = 12

const ToneDuration = 2 * time.Second
const TonePeakGain = 0.4
const ToneFloorGain = 0.001

const DefaultStrumDelay = 80 * time.Millisecond
const DefaultVolume = 0.5
const DefaultSampleRate = 44100
const DefaultBuffer = 100 * time.Millisecond

const DefaultTempo = 120
const TicksPerQuarter = 960

// silence left between triggers laid out in an exported file
const ExportGap = 500 * time.Millisecond
