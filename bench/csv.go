package bench

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{
	"run_id", "variant", "case", "n", "runs",
	"best_cost", "mean_cost", "std_cost",
	"time_best_ms", "time_mean_ms", "time_std_ms",
	"feasible",
}

// WriteCSV writes a header row and one row per record.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.RunID.String(),
			r.Variant,
			r.Case,
			strconv.Itoa(r.N),
			strconv.Itoa(r.Runs),

			ftoa(r.BestCost),
			ftoa(r.MeanCost),
			ftoa(r.StdCost),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			strconv.FormatBool(r.Feasible),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCSVFile writes records to path, creating parent directories.
func WriteCSVFile(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
