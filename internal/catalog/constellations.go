package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errTooFewFields = errors.New("want name,count,keys...")

// ConstellationData is the result of parsing a constellation list.
type ConstellationData struct {
	Defs    []ConstellationDef
	Skipped int
	Errors  []*DataFormatError
}

// ParseConstellations reads rows of the form name,count,HR1,...,HRn. Only
// the first count keys are used. Rows with fewer than two fields or an
// unparsable count are skipped; unparsable keys are dropped from their
// row. Lines starting with # are comments.
func ParseConstellations(r io.Reader) (ConstellationData, error) {
	var data ConstellationData

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				data.Errors = append(data.Errors, &DataFormatError{Line: perr.StartLine, Field: "row", Err: perr.Err})
				data.Skipped++
				continue
			}
			return data, fmt.Errorf("read constellations: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if len(row) < 2 {
			data.Errors = append(data.Errors, &DataFormatError{Line: line, Field: "row", Err: errTooFewFields})
			data.Skipped++
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil || count < 0 {
			if err == nil {
				err = fmt.Errorf("negative count %d", count)
			}
			data.Errors = append(data.Errors, &DataFormatError{Line: line, Field: "count", Err: err})
			data.Skipped++
			continue
		}

		keys := row[2:]
		if len(keys) > count {
			keys = keys[:count]
		}
		def := ConstellationDef{
			Name: strings.TrimSpace(row[0]),
			Keys: make([]int, 0, len(keys)),
		}
		for _, k := range keys {
			hr, err := strconv.Atoi(strings.TrimSpace(k))
			if err != nil {
				data.Errors = append(data.Errors, &DataFormatError{Line: line, Field: "key", Err: err})
				continue
			}
			def.Keys = append(def.Keys, hr)
		}
		data.Defs = append(data.Defs, def)
	}
	return data, nil
}
