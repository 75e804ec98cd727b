package ingest

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
)

// CSVOptions configures the CSV reader.
type CSVOptions struct {
	Encoding string // IANA charset name; legacy exports are windows-1251
	Comma    rune   // default ','
}

// ReadCSV reads a CSV export into rows, decoding from the configured
// charset. Ragged rows are allowed; downstream extraction treats short
// rows as missing fields.
func ReadCSV(path string, opts CSVOptions) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open csv %s", path)
	}
	defer f.Close()

	var reader io.Reader = f
	if opts.Encoding != "" && opts.Encoding != "utf-8" {
		enc, err := htmlindex.Get(opts.Encoding)
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: unsupported charset %q", opts.Encoding)
		}
		reader = enc.NewDecoder().Reader(f)
	}

	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	if opts.Comma != 0 {
		r.Comma = opts.Comma
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: read csv %s", path)
	}
	return rows, nil
}
