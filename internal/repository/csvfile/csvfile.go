// Package csvfile stores rosters as CSV files with a header row.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/grape-tasting-acid/workshop-team-drawer/config"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/mapper"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/repository/filebase"

	"go.uber.org/zap"
)

const bom = "\ufeff"

// Codec reads and writes `name[,gender]` CSV files.
type Codec struct{}

var _ filebase.Codec = Codec{}

// New creates a CSV-backed roster store.
func New(_ context.Context, log *zap.SugaredLogger, cfg *config.Config) *filebase.Store {
	return filebase.NewStore(log.Named("repo.csv"), cfg.Roster, Codec{})
}

// Ext implements filebase.Codec.
func (Codec) Ext() string { return ".csv" }

// Decode reads rows by header name; column lookup ignores case and surrounding spaces.
func (Codec) Decode(r io.Reader) ([]mapper.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	nameCol, genderCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, bom))) {
		case "name":
			nameCol = i
		case "gender":
			genderCol = i
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("%w: missing name column", entities.ErrInvalidArgument)
	}

	var records []mapper.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		records = append(records, mapper.Record{
			Name:   cell(row, nameCol),
			Gender: cell(row, genderCol),
		})
	}
	return records, nil
}

// Encode implements filebase.Codec.
func (Codec) Encode(w io.Writer, records []mapper.Record, withGender bool) error {
	cw := csv.NewWriter(w)

	header := []string{"name"}
	if withGender {
		header = append(header, "gender")
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Name}
		if withGender {
			row = append(row, r.Gender)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
