// Package ratesheet reads and writes the CSV exchange formats used by the
// rate upload and download pages.
package ratesheet

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ncc-uat/ncc-admin-services/models"
)

var (
	RatesHeader   = []string{"Country", "Call to Ethiopia", "Call to Local", "Call to Other Countries", "Receiving Call", "Data (MB)", "Sending SMS", "Receiving SMS"}
	MappingHeader = []string{"TariffPlan::key", "Call_Type::key", "Origination_Type::key", "Destination_Type::key", "Peak::key", "Rate_ID::value"}
)

var ErrEmptySheet = errors.New("rate sheet has no rows")

// ParseRates reads a rate sheet with a header row followed by one row per
// country. Columns follow RatesHeader.
func ParseRates(r io.Reader) ([]models.RoamingRateRow, error) {
	records, err := readAll(r, len(RatesHeader))
	if err != nil {
		return nil, err
	}

	rows := make([]models.RoamingRateRow, 0, len(records))
	for i, rec := range records {
		row := models.RoamingRateRow{Country: strings.TrimSpace(rec[0])}
		if row.Country == "" {
			return nil, fmt.Errorf("line %d: country is required", i+2)
		}
		fields := []*float64{
			&row.CallToEthiopia, &row.CallToLocal, &row.CallToOther, &row.ReceivingCall,
			&row.DataMb, &row.SendingSms, &row.ReceivingSms,
		}
		for j, dst := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[j+1]), 64)
			if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d: invalid %s %q", i+2, RatesHeader[j+1], rec[j+1])
			}
			*dst = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseMapping reads a mapping table with columns following MappingHeader.
func ParseMapping(r io.Reader) ([]models.MappingRow, error) {
	records, err := readAll(r, len(MappingHeader))
	if err != nil {
		return nil, err
	}

	rows := make([]models.MappingRow, 0, len(records))
	for _, rec := range records {
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, models.MappingRow{
			TariffPlanKey:      rec[0],
			CallTypeKey:        rec[1],
			OriginationTypeKey: rec[2],
			DestinationTypeKey: rec[3],
			PeakKey:            rec[4],
			RateIDValue:        rec[5],
		})
	}
	return rows, nil
}

func readAll(r io.Reader, columns int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = columns
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrEmptySheet
	}
	return records[1:], nil
}

func WriteRates(w io.Writer, rows []models.RoamingRateRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RatesHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Country,
			formatNumber(r.CallToEthiopia),
			formatNumber(r.CallToLocal),
			formatNumber(r.CallToOther),
			formatNumber(r.ReceivingCall),
			formatNumber(r.DataMb),
			formatNumber(r.SendingSms),
			formatNumber(r.ReceivingSms),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteMapping(w io.Writer, rows []models.MappingRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(MappingHeader); err != nil {
		return err
	}
	for _, m := range rows {
		if err := cw.Write([]string{m.TariffPlanKey, m.CallTypeKey, m.OriginationTypeKey, m.DestinationTypeKey, m.PeakKey, m.RateIDValue}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRateIDArchive writes a zip holding the mapping table and one rate id
// listing per tariff plan.
func WriteRateIDArchive(w io.Writer, rows []models.MappingRow) error {
	zw := zip.NewWriter(w)

	f, err := zw.Create("mapping_table.csv")
	if err != nil {
		return err
	}
	if err := WriteMapping(f, rows); err != nil {
		return err
	}

	byPlan := make(map[string][]string)
	var plans []string
	for _, m := range rows {
		if _, ok := byPlan[m.TariffPlanKey]; !ok {
			plans = append(plans, m.TariffPlanKey)
		}
		byPlan[m.TariffPlanKey] = append(byPlan[m.TariffPlanKey], m.RateIDValue)
	}
	for _, plan := range plans {
		f, err := zw.Create(fmt.Sprintf("rate_ids/%s.txt", plan))
		if err != nil {
			return err
		}
		if _, err := io.WriteString(f, strings.Join(byPlan[plan], "\n")+"\n"); err != nil {
			return err
		}
	}

	return zw.Close()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
