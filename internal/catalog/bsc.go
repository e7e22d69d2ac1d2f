package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Column ranges of the Bright Star Catalog record, as 0-based half-open
// byte offsets.
const (
	colHREnd     = 4
	colNameEnd   = 14
	colRAh       = 75
	colRAm       = 77
	colRAs       = 79
	colDecSign   = 83
	colDecd      = 84
	colDecm      = 86
	colDecs      = 88
	colDecEnd    = 90
	colVmag      = 102
	colVmagEnd   = 107
	colParallax  = 161
	colParaxEnd  = 166
	minRecordLen = colVmagEnd
)

var errShortLine = errors.New("record shorter than 107 columns")

// StarData is the result of parsing a star catalog.
type StarData struct {
	Records []StarRecord
	Skipped int                // lines without a position or magnitude
	Errors  []*DataFormatError // malformed lines, also counted in Skipped
}

// ParseStars reads a Bright Star Catalog stream. Lines that are too short
// or carry unparsable numbers are reported in Errors and skipped. Lines
// without RA or Dec (the catalog has a few such entries) are skipped
// silently. Only read errors are returned as an error.
func ParseStars(r io.Reader) (StarData, error) {
	var data StarData
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, ok, err := parseStarLine(line, lineNo)
		if err != nil {
			data.Errors = append(data.Errors, err)
			data.Skipped++
			continue
		}
		if !ok {
			data.Skipped++
			continue
		}
		data.Records = append(data.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return data, fmt.Errorf("read catalog: %w", err)
	}
	return data, nil
}

// parseStarLine decodes one fixed-width record. ok is false when the
// record has no position.
func parseStarLine(line string, lineNo int) (StarRecord, bool, *DataFormatError) {
	if len(line) < minRecordLen {
		return StarRecord{}, false, &DataFormatError{Line: lineNo, Field: "line", Err: errShortLine}
	}

	hr, err := strconv.Atoi(field(line, 0, colHREnd))
	if err != nil {
		return StarRecord{}, false, &DataFormatError{Line: lineNo, Field: "hr", Err: err}
	}

	raH, raM, raS := field(line, colRAh, colRAm), field(line, colRAm, colRAs), field(line, colRAs, colDecSign)
	decD, decM, decS := field(line, colDecd, colDecm), field(line, colDecm, colDecs), field(line, colDecs, colDecEnd)
	if raH == "" || raM == "" || raS == "" || decD == "" || decM == "" || decS == "" {
		return StarRecord{}, false, nil
	}

	ra, err := sexagesimal(raH, raM, raS)
	if err != nil {
		return StarRecord{}, false, &DataFormatError{Line: lineNo, Field: "ra", Err: err}
	}
	dec, err := sexagesimal(decD, decM, decS)
	if err != nil {
		return StarRecord{}, false, &DataFormatError{Line: lineNo, Field: "dec", Err: err}
	}
	if field(line, colDecSign, colDecd) == "-" {
		dec = -dec
	}

	vmag, err := strconv.ParseFloat(field(line, colVmag, colVmagEnd), 64)
	if err != nil {
		return StarRecord{}, false, &DataFormatError{Line: lineNo, Field: "vmag", Err: err}
	}

	return StarRecord{
		HR:     hr,
		Name:   field(line, colHREnd, colNameEnd),
		Vmag:   vmag,
		RAdeg:  normalizeDeg(ra * 15),
		DecDeg: math.Max(-90, math.Min(90, dec)),
		DistPc: distance(line),
	}, true, nil
}

// field returns the trimmed columns [from, to), or "" past the line end.
func field(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return strings.TrimSpace(line[from:to])
}

// sexagesimal combines units, minutes and seconds into a single value.
func sexagesimal(u, m, s string) (float64, error) {
	uv, err := strconv.ParseFloat(u, 64)
	if err != nil {
		return 0, err
	}
	mv, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, err
	}
	sv, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return uv + mv/60 + sv/3600, nil
}

// distance converts the trigonometric parallax (arcseconds) to parsecs.
// Missing, non-positive or malformed parallaxes give 0.
func distance(line string) float64 {
	if len(line) < colParaxEnd {
		return 0
	}
	plx, err := strconv.ParseFloat(field(line, colParallax, colParaxEnd), 64)
	if err != nil || plx <= 0 {
		return 0
	}
	return 1 / plx
}

func normalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
