package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
)

const sampleCSV = "\ufeffName,Qty On Hand,Price,Category\nHQD CUVIE PLUS PEACH,4,$12.99,Disposable Vapes\nRAW CONES KING SIZE,10,4.50,Papers\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd, e := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	e.close()
	return out.String(), err
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "cli.db"))
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	csvPath := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(sampleCSV), 0o600))
	return csvPath
}

func TestCLI_InitAddStoreRunJSON(t *testing.T) {
	csvPath := setupEnv(t)

	_, err := execute(t, "init-db")
	require.NoError(t, err)

	out, err := execute(t, "stores", "add", "Calle 8")
	require.NoError(t, err)
	assert.Contains(t, out, "Calle 8")

	pdfPath := filepath.Join(t.TempDir(), "report.pdf")
	out, err = execute(t, "run", csvPath, "--store", "Calle 8", "--supplier", "CigarPOS", "--json", "--report-pdf", pdfPath)
	require.NoError(t, err)

	var report dto.RunReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.ProductsUpserted)
	assert.Equal(t, "CigarPOS", report.Supplier)

	info, err := os.Stat(pdfPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCLI_RunUnknownStoreFails(t *testing.T) {
	csvPath := setupEnv(t)
	_, err := execute(t, "init-db")
	require.NoError(t, err)

	_, err = execute(t, "run", csvPath, "--store", "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOPE")
}

func TestCLI_FailedRunKeepsConnectionUntilClose(t *testing.T) {
	csvPath := setupEnv(t)
	_, err := execute(t, "init-db")
	require.NoError(t, err)

	var out bytes.Buffer
	cmd, e := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"run", csvPath, "--store", "NOPE"})
	require.Error(t, cmd.Execute())
	require.NotNil(t, e.app, "la conexión sigue abierta tras un RunE fallido")

	e.close()
	assert.Nil(t, e.app)
	e.close()
}

func TestCLI_PreviewWithoutDatabase(t *testing.T) {
	csvPath := setupEnv(t)

	out, err := execute(t, "preview", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "CUVIE PLUS PEACH")
	assert.Contains(t, out, "NICOTINE VAPES > CUVIE PLUS")
	assert.Contains(t, out, "ROLLING PAPERS AND CONES > RAW CONES")
	assert.NoFileExists(t, os.Getenv("SQLITE_PATH"))
}
