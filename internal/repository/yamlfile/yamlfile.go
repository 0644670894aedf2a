// Package yamlfile stores rosters as YAML lists of {name, gender} entries.
package yamlfile

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/grape-tasting-acid/workshop-team-drawer/config"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/mapper"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/repository/filebase"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Codec reads and writes YAML rosters.
type Codec struct{}

var _ filebase.Codec = Codec{}

// New creates a YAML-backed roster store.
func New(_ context.Context, log *zap.SugaredLogger, cfg *config.Config) *filebase.Store {
	return filebase.NewStore(log.Named("repo.yaml"), cfg.Roster, Codec{})
}

// Ext implements filebase.Codec.
func (Codec) Ext() string { return ".yaml" }

// Decode implements filebase.Codec. An empty document is an empty roster.
func (Codec) Decode(r io.Reader) ([]mapper.Record, error) {
	var records []mapper.Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return records, nil
}

// Encode implements filebase.Codec. Gender is emitted only when present.
func (Codec) Encode(w io.Writer, records []mapper.Record, _ bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
