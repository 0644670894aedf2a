package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grape-tasting-acid/workshop-team-drawer/config"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExport(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Export: config.ExportConfig{Backend: "csv", Dir: dir, Prefix: "draw_result"}}
	e := New(zap.NewNop().Sugar(), cfg)
	e.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local) }

	a := entities.Assignment{Teams: []entities.Team{{
		Index:   0,
		Leader:  entities.NewLeader("Kim", entities.GenderFemale),
		Members: []entities.Person{entities.NewMember("OB1", entities.CategoryOB)},
	}}}

	paths, err := e.Export(context.Background(), a)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "draw_result_20240102_030405_by_team.csv"),
		filepath.Join(dir, "draw_result_20240102_030405_flat.csv"),
	}, paths)

	byTeam, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	require.Equal(t, "\ufeffTeam 1,\nLeader: Kim (F),leader\nOB1,ob\n", string(byTeam))

	flat, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimPrefix(string(flat), "\ufeff"), "\n")
	require.Equal(t, "team,role,group,name,gender", lines[0])
	require.Equal(t, "1,leader,leader,Kim,F", lines[1])
	require.Equal(t, "1,member,ob,OB1,M", lines[2])
}
