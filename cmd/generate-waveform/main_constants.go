package main

// Default command-line flag values
const (
	defaultOutputPath = "result"
	defaultAmplitude  = 1.0
	defaultBitDepth   = 16
)

// Prompt settings
const (
	maxPromptAttempts = 3
)

// Flag names, shared between flag registration, the config file and prompts.
const (
	flagRiseTime   = "rise-time"
	flagFallTime   = "fall-time"
	flagPulseWidth = "pulse-width"
	flagPeriod     = "period"
	flagOutputPath = "output-path"
	flagShowPlot   = "show-plot"
	flagAmplitude  = "amplitude"
	flagWAV        = "wav"
	flagBitDepth   = "bit-depth"
)

// Prompt texts
const (
	promptRiseTime   = "Please provide raise time duration"
	promptFallTime   = "Please provide fall time duration"
	promptPeriod     = "Please provide period"
	promptPulseWidth = "Please provide pulse width"
	promptOutputPath = "Please provide output path for the csv file"
	promptShowPlot   = "Do you want to see plot as well?"
)
