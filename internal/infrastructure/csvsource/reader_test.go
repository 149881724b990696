package csvsource_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/infrastructure/csvsource"
)

func readAll(t *testing.T, r interface{ Read() ([]string, error) }) [][]string {
	t.Helper()
	var out [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, rec)
	}
}

func TestNewReader_StripsBOM(t *testing.T) {
	in := "\xEF\xBB\xBFName,UPC\nGEEK BAR,00123\n"
	rows := readAll(t, csvsource.NewReader(strings.NewReader(in)))

	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][0], "la primera cabecera no debe arrastrar el BOM")
	assert.Equal(t, "00123", rows[1][1], "los ceros a la izquierda se conservan como texto")
}

func TestNewReader_RaggedAndLazyQuotes(t *testing.T) {
	in := "Name,Qty,Price\nA \"big\" pack,3\nB,1,2.50,extra\n"
	rows := readAll(t, csvsource.NewReader(strings.NewReader(in)))

	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 2)
	assert.Equal(t, `A "big" pack`, rows[1][0])
	assert.Len(t, rows[2], 4)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name\nX\n"), 0o600))

	f, err := csvsource.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows := readAll(t, f)
	assert.Equal(t, [][]string{{"Name"}, {"X"}}, rows)

	_, err = csvsource.Open(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
