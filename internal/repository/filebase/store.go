// Package filebase implements roster storage over one file per roster.
package filebase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/grape-tasting-acid/workshop-team-drawer/config"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/mapper"

	"go.uber.org/zap"
)

// Codec reads and writes roster records in one file format.
type Codec interface {
	// Ext is the file extension including the dot.
	Ext() string
	Decode(r io.Reader) ([]mapper.Record, error)
	// Encode writes records; withGender adds the gender column for leader rosters.
	Encode(w io.Writer, records []mapper.Record, withGender bool) error
}

// Store serves rosters from files in a single directory.
type Store struct {
	log   *zap.SugaredLogger
	cfg   config.RosterConfig
	codec Codec
}

// NewStore creates a Store using codec for the file format.
func NewStore(log *zap.SugaredLogger, cfg config.RosterConfig, codec Codec) *Store {
	return &Store{
		log:   log,
		cfg:   cfg,
		codec: codec,
	}
}

// OnStart writes template rosters when bootstrapping is enabled.
func (s *Store) OnStart(ctx context.Context) error {
	if s.cfg.Bootstrap {
		if _, err := s.EnsureTemplates(ctx); err != nil {
			return fmt.Errorf("bootstrap templates: %w", err)
		}
	}
	s.log.Debugw("roster store ready", "dir", s.cfg.Dir, "format", s.codec.Ext())
	return nil
}

// OnStop is a no-op; files are opened per call.
func (s *Store) OnStop(_ context.Context) error {
	return nil
}

// Path returns the file backing the roster of category c.
func (s *Store) Path(c entities.Category) string {
	var name string
	switch c {
	case entities.CategoryLeader:
		name = s.cfg.LeadersFile
	case entities.CategoryOB:
		name = s.cfg.OBFile
	case entities.CategoryYB:
		name = s.cfg.YBFile
	case entities.CategoryGirl:
		name = s.cfg.GirlsFile
	}
	return filepath.Join(s.cfg.Dir, name+s.codec.Ext())
}

// Leaders reads the leader roster. A missing file is ErrRosterNotFound.
func (s *Store) Leaders(ctx context.Context) ([]entities.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(entities.CategoryLeader)
	records, err := s.read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: leader file %s", entities.ErrRosterNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	leaders, err := mapper.ToLeaders(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return leaders, nil
}

// Pool reads one candidate pool. A missing file yields an empty pool.
func (s *Store) Pool(ctx context.Context, c entities.Category) ([]entities.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !slices.Contains(entities.Pools, c) {
		return nil, fmt.Errorf("%w: %q is not a pool", entities.ErrInvalidArgument, c)
	}

	path := s.Path(c)
	records, err := s.read(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debugw("pool file missing, using empty pool", "pool", c, "path", path)
		return []entities.Person{}, nil
	}
	if err != nil {
		return nil, err
	}
	return mapper.ToMembers(records, c), nil
}

// EnsureTemplates writes sample rosters for every missing file and returns the created paths.
// Existing files are never touched.
func (s *Store) EnsureTemplates(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create roster dir: %w", err)
	}

	sample := SampleRoster()
	var created []string
	for _, c := range append([]entities.Category{entities.CategoryLeader}, entities.Pools...) {
		path := s.Path(c)
		ok, err := s.writeNew(path, mapper.FromPeople(sample.Pool(c)), c == entities.CategoryLeader)
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, path)
			s.log.Infow("roster template created", "path", path)
		}
	}
	return created, nil
}

func (s *Store) read(path string) ([]mapper.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	records, err := s.codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}

func (s *Store) writeNew(path string, records []mapper.Record, withGender bool) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create %s: %w", path, err)
	}

	if err := s.codec.Encode(f, records, withGender); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", path, err)
	}
	return true, nil
}
