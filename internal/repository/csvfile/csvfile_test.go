package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grape-tasting-acid/workshop-team-drawer/config"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/mapper"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(dir string) *config.Config {
	return &config.Config{Roster: config.RosterConfig{
		Backend:     "csv",
		Dir:         dir,
		LeadersFile: "leaders",
		OBFile:      "ob",
		YBFile:      "yb",
		GirlsFile:   "girls",
	}}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDecodeHeaderVariants(t *testing.T) {
	in := "\ufeffName , Gender\nKim,m\n,F\nLee, F\n"

	records, err := Codec{}.Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []mapper.Record{
		{Name: "Kim", Gender: "m"},
		{Name: "", Gender: "F"},
		{Name: "Lee", Gender: "F"},
	}, records)
}

func TestDecodeRequiresNameColumn(t *testing.T) {
	_, err := Codec{}.Decode(strings.NewReader("title\nfoo\n"))
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestDecodeEmptyFile(t *testing.T) {
	records, err := Codec{}.Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := New(ctx, zap.NewNop().Sugar(), testConfig(dir))

	writeFile(t, filepath.Join(dir, "leaders.csv"), "name,gender\nKim,M\nLee,F\n")
	writeFile(t, filepath.Join(dir, "ob.csv"), "name\nOB1\n\nOB2\n")

	leaders, err := store.Leaders(ctx)
	require.NoError(t, err)
	require.Equal(t, []entities.Person{
		entities.NewLeader("Kim", entities.GenderMale),
		entities.NewLeader("Lee", entities.GenderFemale),
	}, leaders)

	ob, err := store.Pool(ctx, entities.CategoryOB)
	require.NoError(t, err)
	require.Len(t, ob, 2)

	yb, err := store.Pool(ctx, entities.CategoryYB)
	require.NoError(t, err)
	require.Empty(t, yb)

	_, err = store.Pool(ctx, entities.CategoryLeader)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestStoreMissingLeaders(t *testing.T) {
	ctx := context.Background()
	store := New(ctx, zap.NewNop().Sugar(), testConfig(t.TempDir()))

	_, err := store.Leaders(ctx)
	require.ErrorIs(t, err, entities.ErrRosterNotFound)
}

func TestStoreInvalidLeaderGender(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := New(ctx, zap.NewNop().Sugar(), testConfig(dir))
	writeFile(t, filepath.Join(dir, "leaders.csv"), "name,gender\nKim,Q\n")

	_, err := store.Leaders(ctx)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestEnsureTemplates(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	store := New(ctx, zap.NewNop().Sugar(), testConfig(dir))

	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFile(t, filepath.Join(dir, "ob.csv"), "name\nmine\n")

	created, err := store.EnsureTemplates(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(dir, "leaders.csv"),
		filepath.Join(dir, "yb.csv"),
		filepath.Join(dir, "girls.csv"),
	}, created)

	ob, err := store.Pool(ctx, entities.CategoryOB)
	require.NoError(t, err)
	require.Equal(t, []entities.Person{entities.NewMember("mine", entities.CategoryOB)}, ob)

	leaders, err := store.Leaders(ctx)
	require.NoError(t, err)
	require.Len(t, leaders, 8)

	again, err := store.EnsureTemplates(ctx)
	require.NoError(t, err)
	require.Empty(t, again)
}
