package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJobsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "factori.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJobs(t *testing.T) {
	path := writeJobsFile(t, `
jobs:
  - name: mainnet
    in: ./abi/mainnet
    out: ./out/mainnet
    filename: ETH_ADDRESSES
  - in: ./abi/optimism
    out: ./out/optimism
`)
	jobs, err := LoadJobs(path)
	require.NoError(t, err)
	assert.Equal(t, []Job{
		{Name: "mainnet", In: "./abi/mainnet", Out: "./out/mainnet", Filename: "ETH_ADDRESSES"},
		{Name: "job 2", In: "./abi/optimism", Out: "./out/optimism"},
	}, jobs)
}

func TestLoadJobsEmptyFile(t *testing.T) {
	jobs, err := LoadJobs(writeJobsFile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestLoadJobsUnknownKey(t *testing.T) {
	_, err := LoadJobs(writeJobsFile(t, `
jobs:
  - in: ./abi
    ouput: ./out
`))
	assert.Error(t, err)
}

func TestLoadJobsMissingFile(t *testing.T) {
	_, err := LoadJobs(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
