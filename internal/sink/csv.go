package sink

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	waveform "github.com/tphakala/go-pulse-waveform"
)

// CSV writes a series as a two-column table with a header row and no index
// column.
type CSV struct{}

// NewCSV returns a CSV sink.
func NewCSV() *CSV {
	return &CSV{}
}

// Write stores series as dir/waveform_out.csv.
func (c *CSV) Write(series *waveform.Series, dir string) (string, error) {
	if err := checkSeries(series); err != nil {
		return "", err
	}

	return writeAtomic(dir, CSVFileName, func(f *os.File) error {
		buf := bufio.NewWriter(f)
		w := csv.NewWriter(buf)

		if err := w.Write([]string{timeColumn, amplitudeColumn}); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}

		record := make([]string, 2)
		for i := range series.Len() {
			record[0] = formatFloat(series.Time[i])
			record[1] = formatFloat(series.Amplitude[i])
			if err := w.Write(record); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i, err)
			}
		}

		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("failed to write rows: %w", err)
		}
		if err := buf.Flush(); err != nil {
			return fmt.Errorf("failed to flush output: %w", err)
		}
		return nil
	})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, floatFormat, floatPrecision, floatBits)
}
