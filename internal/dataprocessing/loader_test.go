package dataprocessing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignclean/internal/config"
	apperrors "campaignclean/internal/errors"
	"campaignclean/internal/infrastructure"
	"campaignclean/internal/shared/testutil"
	"campaignclean/pkg/contracts/domain"
)

func newTestLoader(t *testing.T) (*Loader, *testutil.RecordingHandler, *infrastructure.RunMetrics) {
	t.Helper()
	logger, handler := testutil.NewRecordingLogger()
	metrics := infrastructure.NewRunMetrics()
	return NewLoader(config.Default().Loader, logger, metrics), handler, metrics
}

func TestLoader_ConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	header := []string{"client_id", "age"}

	// written out of name order on purpose
	testutil.WriteZip(t, filepath.Join(dir, "b.csv.zip"),
		testutil.CSVMember("b2.csv", testutil.BuildCSV(header, [][]string{{"4", "40"}})),
		testutil.CSVMember("b1.csv", testutil.BuildCSV(header, [][]string{{"3", "30"}})),
	)
	testutil.WriteZip(t, filepath.Join(dir, "a.csv.zip"),
		testutil.CSVMember("a.csv", testutil.BuildCSV(header, [][]string{{"1", "10"}, {"2", "20"}})),
	)

	loader, _, _ := newTestLoader(t)
	set, err := loader.Load(context.Background(), dir)
	require.NoError(t, err)

	var ids []string
	for _, r := range set.Records {
		ids = append(ids, r.Value(domain.ColClientID))
	}
	// archives by name, members in archive order, rows in file order
	assert.Equal(t, []string{"1", "2", "4", "3"}, ids)
	assert.Equal(t, header, set.Columns)
}

func TestLoader_UnionOfColumns(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteZip(t, filepath.Join(dir, "data.zip"),
		testutil.CSVMember("one.csv", "client_id,age\n1,30\n"),
		testutil.CSVMember("two.csv", "client_id,job\n2,admin.\n"),
	)

	loader, _, _ := newTestLoader(t)
	set, err := loader.Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"client_id", "age", "job"}, set.Columns)
	require.Equal(t, 2, set.Len())

	_, ok := set.Records[0].Get("job")
	assert.False(t, ok, "first member carries no job column")
	_, ok = set.Records[1].Get("age")
	assert.False(t, ok, "second member carries no age column")
}

func TestLoader_MixedFormats(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "bank.zip")
	testutil.WriteZip(t, archivePath,
		testutil.CSVMember("part1.csv", testutil.BuildCSV(testutil.SampleHeader, testutil.SampleRows[:1])),
		testutil.XLSXMember(t, "part2.xlsx", testutil.SampleHeader, testutil.SampleRows[1:]),
		testutil.CSVMember("notes.txt", "ignored"),
	)

	loader, handler, metrics := newTestLoader(t)
	set, err := loader.Load(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, 2, set.Len())
	assert.Equal(t, "1", set.Records[0].Value(domain.ColClientID))
	assert.Equal(t, "2", set.Records[1].Value(domain.ColClientID))
	assert.Equal(t, "basic.4y", set.Records[1].Value(domain.ColEducation))

	record, ok := handler.Find("Available columns")
	require.True(t, ok)
	assert.Equal(t, testutil.SampleHeader, record.Attrs["columns"])
	assert.EqualValues(t, 2, record.Attrs["rows"])

	opened, ok := handler.Find("Reading archive")
	require.True(t, ok)
	assert.Equal(t, filepath.Base(archivePath), opened.Attrs["archive"])
	info, err := os.Stat(archivePath)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), opened.Attrs["size_bytes"])

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "campaignclean_members_parsed_total")
	assert.Contains(t, names, "campaignclean_rows_loaded_total")
}

func TestLoader_IgnoresNonArchives(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "loose.csv"), "client_id\n9\n")
	testutil.WriteZip(t, filepath.Join(dir, "data.zip"),
		testutil.CSVMember("data.csv", "client_id\n1\n"),
	)

	loader, _, _ := newTestLoader(t)
	set, err := loader.Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
}

func TestLoader_NoArchives(t *testing.T) {
	loader, _, _ := newTestLoader(t)
	set, err := loader.Load(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Columns)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string)
		errType apperrors.ErrorType
		context map[string]string
	}{
		{
			name: "malformed member aborts the load",
			setup: func(t *testing.T, dir string) {
				testutil.WriteZip(t, filepath.Join(dir, "a.zip"),
					testutil.CSVMember("good.csv", "client_id,age\n1,30\n"),
					testutil.CSVMember("bad.csv", "client_id,age\n1,30,extra\n"),
				)
			},
			errType: apperrors.ErrTypeParsing,
			context: map[string]string{"member": "bad.csv"},
		},
		{
			name: "corrupt archive",
			setup: func(t *testing.T, dir string) {
				testutil.WriteFile(t, filepath.Join(dir, "a.zip"), "this is not a zip")
			},
			errType: apperrors.ErrTypeIO,
		},
		{
			name: "missing input directory",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.Remove(dir))
			},
			errType: apperrors.ErrTypeIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "input")
			require.NoError(t, os.MkdirAll(dir, 0755))
			tt.setup(t, dir)

			loader, _, _ := newTestLoader(t)
			set, err := loader.Load(context.Background(), dir)
			require.Error(t, err)
			assert.Nil(t, set)
			assert.Equal(t, tt.errType, apperrors.TypeOf(err))

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			for k, v := range tt.context {
				assert.Equal(t, v, appErr.Context[k])
			}
		})
	}
}

func TestLoader_ContextCancelled(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteZip(t, filepath.Join(dir, "a.zip"), testutil.CSVMember("a.csv", "client_id\n1\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader, _, _ := newTestLoader(t)
	_, err := loader.Load(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}
