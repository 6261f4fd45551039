package sink

// Output file names
const (
	// CSVFileName is the name of the tabular output inside the destination directory.
	CSVFileName = "waveform_out.csv"

	// WAVFileName is the name of the audio output inside the destination directory.
	WAVFileName = "waveform_out.wav"
)

// CSV layout
const (
	timeColumn      = "time"
	amplitudeColumn = "amplitude"
	floatFormat     = 'g' // Shortest representation that round-trips
	floatPrecision  = -1
	floatBits       = 64
)

// File system
const (
	dirPerm      = 0o755
	tempPattern  = ".waveform-*.tmp"
	outputPerm   = 0o644
	monoChannels = 1
)

// WAV format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavFormatPCM = 1
)
