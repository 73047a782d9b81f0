// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package sim

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
)

var (
	csvHeaders = []string{
		"n", "k", "nsym", "trials", "corrected", "uncorrected", "silent",
		"corrected_rate", "uncorrected_rate", "silent_rate",
	}
	faultModelCSVHeaders = []string{
		"n", "k", "nsym", "fault_type", "trials", "corrected", "uncorrected", "silent",
		"corrected_rate", "uncorrected_rate", "silent_rate",
	}
)

// WriteCSV writes random and exhaustive rows to out, "-" is stdout.
func WriteCSV(rows [][]string, out string) error {
	return writeCSVFile(csvHeaders, rows, out)
}

// WriteFaultModelCSV writes fault model rows to out, "-" is stdout.
func WriteFaultModelCSV(rows [][]string, out string) error {
	return writeCSVFile(faultModelCSVHeaders, rows, out)
}

func writeCSVFile(headers []string, rows [][]string, out string) error {
	if out == "-" {
		return writeCSV(os.Stdout, headers, rows)
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}
	if err = writeCSV(f, headers, rows); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close csv")
}

func writeCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	if err := cw.WriteAll(rows); err != nil {
		return errors.Wrap(err, "write csv rows")
	}
	return nil
}
