package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCSVLoader(t *testing.T) {
	t.Run("loads files in name order with typed cells", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "b_financials.csv", "month,revenue\n2024-01-15,1000.5\n")
		writeFile(t, dir, "a_sales.csv", "seller,net_value\nAna,100\nBeto,250.5\n")
		writeFile(t, dir, "notes.txt", "ignored")

		loader, err := CSVFactory(Options{InputDir: dir})
		require.NoError(t, err)

		datasets, err := loader.Load(context.Background())
		require.NoError(t, err)

		require.Len(t, datasets, 2)
		assert.Equal(t, "a_sales", datasets[0].Name)
		assert.Equal(t, "b_financials", datasets[1].Name)

		rows := datasets[0].Table.Rows
		require.Len(t, rows, 2)
		assert.Equal(t, "Ana", rows[0]["seller"])
		assert.Equal(t, 100.0, rows[0]["net_value"])
		assert.Equal(t, 250.5, rows[1]["net_value"])

		date, ok := datasets[1].Table.Rows[0]["month"].(time.Time)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.csv", "a,b\n1,2,3\n")

		loader, err := CSVFactory(Options{InputDir: dir})
		require.NoError(t, err)

		_, err = loader.Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("rejects empty files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "empty.csv", "")

		loader, err := CSVFactory(Options{InputDir: dir})
		require.NoError(t, err)

		_, err = loader.Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("requires an input directory", func(t *testing.T) {
		_, err := CSVFactory(Options{})
		assert.Error(t, err)
	})
}
