package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatJSON},
		{in: "JSON", want: FormatJSON},
		{in: " yaml ", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "TOML", want: FormatTOML},
		{in: "csv", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			require.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2024, time.March, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "ai_comparison_20240307.json", ExportFileName(FormatJSON, now))
	assert.Equal(t, "ai_comparison_20240307.yaml", ExportFileName(FormatYAML, now))
}

func TestEncodeSnapshot_JSONMatchesSchema(t *testing.T) {
	data, err := EncodeSnapshot(newSeedStore(t).ExportSnapshot(), FormatJSON)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "{\n  \"tools\": {"))
	assert.True(t, strings.HasSuffix(string(data), "}\n"))
	require.NoError(t, ValidateSnapshotJSON(data))
}

func TestEncodeSnapshot_EmptyListsEncodeAsArrays(t *testing.T) {
	store := newSeedStore(t)
	tool, err := store.GetTool("Claude")
	require.NoError(t, err)
	tool.Nuances = nil
	require.NoError(t, store.SetTool("Claude", tool))

	data, err := EncodeSnapshot(store.ExportSnapshot(), FormatJSON)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
	require.NoError(t, ValidateSnapshotJSON(data))
}

func TestEncodeSnapshot_UnknownFormat(t *testing.T) {
	_, err := EncodeSnapshot(DefaultSeed(), Format("csv"))
	require.Error(t, err)
}

func TestWriteExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	snapshot := newSeedStore(t).ExportSnapshot()

	path, err := WriteExport(dir, snapshot, FormatYAML, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ai_comparison_20250102.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	seed, err := NewLoader(nil).Decode(data)
	require.NoError(t, err)
	if diff := cmp.Diff(snapshot, seed.Snapshot); diff != "" {
		t.Fatalf("re-imported snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteExport_TOMLReloads(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	snapshot := newSeedStore(t).ExportSnapshot()

	path, err := WriteExport(dir, snapshot, FormatTOML, now)
	require.NoError(t, err)
	assert.Equal(t, "ai_comparison_20250630.toml", filepath.Base(path))

	seed, err := NewLoader(nil).Load(context.Background(), path)
	require.NoError(t, err)
	if diff := cmp.Diff(snapshot, seed.Snapshot); diff != "" {
		t.Fatalf("re-imported snapshot mismatch (-want +got):\n%s", diff)
	}
}
