package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/unit"

	"github.com/astrokit/stardrift/internal/star"
)

// Parse reads TAP CSV output and returns the stars it describes, stamped
// with the catalog's reference epoch. Malformed rows and rows without a
// defined distance or complete kinematics are skipped with a warning.
func Parse(r io.Reader, epoch time.Time, logger *slog.Logger) (star.Set, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return star.Set{}, fmt.Errorf("reading catalog header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range queryColumns {
		if _, ok := col[name]; !ok {
			return star.Set{}, fmt.Errorf("catalog response missing column %q", name)
		}
	}

	set := star.Set{Epoch: epoch}
	row := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				logger.Warn("skipping malformed catalog row", "row", row, "error", err)
				continue
			}
			return star.Set{}, fmt.Errorf("reading catalog row %d: %w", row, err)
		}

		s, err := parseRow(rec, col)
		if err != nil {
			logger.Warn("skipping catalog row", "row", row, "error", err)
			continue
		}
		set.Stars = append(set.Stars, s)
	}

	return set, nil
}

func parseRow(rec []string, col map[string]int) (star.Star, error) {
	field := func(name string) (string, error) {
		i := col[name]
		if i >= len(rec) {
			return "", fmt.Errorf("row too short for column %q", name)
		}
		return strings.TrimSpace(rec[i]), nil
	}
	num := func(name string) (float64, error) {
		raw, err := field(name)
		if err != nil {
			return 0, err
		}
		if raw == "" || strings.EqualFold(raw, "null") {
			return 0, fmt.Errorf("column %q is empty", name)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", name, err)
		}
		return v, nil
	}

	designation, err := field("designation")
	if err != nil {
		return star.Star{}, err
	}

	raDeg, err := num("ra")
	if err != nil {
		return star.Star{}, err
	}
	decDeg, err := num("dec")
	if err != nil {
		return star.Star{}, err
	}
	parallax, err := num("parallax")
	if err != nil {
		return star.Star{}, err
	}
	if parallax <= 0 {
		return star.Star{}, fmt.Errorf("non-positive parallax %g mas", parallax)
	}
	pmra, err := num("pmra")
	if err != nil {
		return star.Star{}, err
	}
	pmdec, err := num("pmdec")
	if err != nil {
		return star.Star{}, err
	}
	rv, err := num("radial_velocity")
	if err != nil {
		return star.Star{}, err
	}

	// Catalog units: degrees, mas and mas/yr, km/s. Gaia's pmra is
	// mu_alpha* (cos Dec applied), which is what Star.PMRA holds.
	s := star.Star{
		Designation:    designation,
		RA:             unit.AngleFromDeg(raDeg),
		Dec:            unit.AngleFromDeg(decDeg),
		Distance:       1000.0 / parallax,
		PMRA:           unit.AngleFromSec(pmra / 1000.0),
		PMDec:          unit.AngleFromSec(pmdec / 1000.0),
		RadialVelocity: rv,
	}
	if err := s.CanPropagate(); err != nil {
		return star.Star{}, err
	}
	return s, nil
}
