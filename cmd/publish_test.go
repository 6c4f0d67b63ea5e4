package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/contract-factori/ui"
)

func setupInput(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func readOutput(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	result := map[string]string{}
	for _, e := range entries {
		content, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		result[e.Name()] = string(content)
	}
	return result
}

func TestPublish(t *testing.T) {
	in := setupInput(t, map[string]string{
		"Token.json":      `{"address":"0xCCC","abi":[{"type":"function","name":"name"}]}`,
		"Vault_usdc.json": `{"address":"0xAAA","abi":[{"x":1}]}`,
		"Whitelist.json":  `{"address":"0xDDD", "abi": [ ]}`,
	})
	out := t.TempDir()
	rec := ui.NewRecordingUI()

	Publish(rec, PublishOptions{In: in, Out: out, Filename: "ETH_ADDRESSES"})

	assert.Empty(t, rec.ErrorMessages())
	assert.Equal(t, []string{
		"Addresses parsed to " + filepath.Join(out, "ETH_ADDRESSES.json"),
		"ABIs cleaned to " + out,
	}, rec.SuccessMessages())

	files := readOutput(t, out)
	assert.Len(t, files, 4)
	assert.JSONEq(t, `{"Token":"0xCCC","Vault_usdc":"0xAAA","Whitelist":"0xDDD"}`, files["ETH_ADDRESSES.json"])
	assert.Equal(t, `[{"type":"function","name":"name"}]`, files["Token.json"])
	assert.Equal(t, `[{"x":1}]`, files["Vault.json"])
	assert.Equal(t, `[]`, files["Whitelist.json"])
}

func TestPublishIsIdempotent(t *testing.T) {
	in := setupInput(t, map[string]string{
		"Vault_1.json": `{"address":"0xAAA","abi":[{"x":1}]}`,
		"Vault_2.json": `{"address":"0xBBB","abi":[{"x":2}]}`,
		"Pool.json":    `{"address":"0xEEE","abi":[{"y":"<&>"}]}`,
	})
	first := t.TempDir()
	second := t.TempDir()

	Publish(ui.NewRecordingUI(), PublishOptions{In: in, Out: first, Filename: "ADDRESSES"})
	Publish(ui.NewRecordingUI(), PublishOptions{In: in, Out: second, Filename: "ADDRESSES"})

	assert.Equal(t, readOutput(t, first), readOutput(t, second))
	assert.Equal(t, `[{"y":"<&>"}]`, readOutput(t, first)["Pool.json"])
}

func TestPublishEmptyInput(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	rec := ui.NewRecordingUI()

	Publish(rec, PublishOptions{In: in, Out: out, Filename: "ADDRESSES"})

	assert.Empty(t, readOutput(t, out))
	assert.Empty(t, rec.ErrorMessages())
	assert.Empty(t, rec.SuccessMessages())
	assert.Equal(t, []string{
		"Read 0 files, found 0 contract addresses",
		"Read 0 files, found 0 contract interfaces (0 duplicates skipped)",
	}, rec.InfoMessages())
}

func TestPublishMissingAddress(t *testing.T) {
	in := setupInput(t, map[string]string{
		"Token.json": `{"abi":[]}`,
	})
	out := t.TempDir()
	rec := ui.NewRecordingUI()

	Publish(rec, PublishOptions{In: in, Out: out, Filename: "ADDRESSES"})

	assert.Empty(t, rec.ErrorMessages())
	files := readOutput(t, out)
	assert.Equal(t, `{}`, files["ADDRESSES.json"])
	assert.Equal(t, `[]`, files["Token.json"])
}

// A broken file is reported once per scan and the rest of the run goes on.
func TestPublishKeepsGoingAfterScanError(t *testing.T) {
	in := setupInput(t, map[string]string{
		"Broken.json": `{`,
	})
	out := t.TempDir()
	rec := ui.NewRecordingUI()

	Publish(rec, PublishOptions{In: in, Out: out, Filename: "ADDRESSES"})

	errs := rec.ErrorMessages()
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "Broken.json")
	assert.Contains(t, errs[1], "Broken.json")
	assert.Empty(t, readOutput(t, out))
}

func TestPublishMissingOutputDir(t *testing.T) {
	in := setupInput(t, map[string]string{
		"Vault_1.json": `{"address":"0xAAA","abi":[]}`,
		"Token.json":   `{"address":"0xBBB","abi":[]}`,
	})
	out := filepath.Join(t.TempDir(), "nope")
	rec := ui.NewRecordingUI()

	Publish(rec, PublishOptions{In: in, Out: out, Filename: "ADDRESSES"})

	errs := rec.ErrorMessages()
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "Couldn't write addresses")
	assert.Contains(t, errs[1], "Couldn't write 2 of 2 ABIs")
	assert.Empty(t, rec.SuccessMessages())
}

func TestPublishSummary(t *testing.T) {
	in := setupInput(t, map[string]string{
		"Vault.json": `{"address":"0x9642b23Ed1E01Df1092B92641051881a322F5D4E","abi":[]}`,
	})
	rec := ui.NewRecordingUI()

	Publish(rec, PublishOptions{In: in, Out: t.TempDir(), Filename: "ADDRESSES", Summary: true})

	assert.Equal(t, []string{
		"Vault | 0x9642b23Ed1E01Df1092B92641051881a322F5D4E | 0 methods, 0 events, 0 errors",
	}, rec.TableRows())
}

func TestPublishReportsRunFacts(t *testing.T) {
	in := setupInput(t, map[string]string{
		"Vault_1.json": `{"address":"0xAAA","abi":[]}`,
		"Vault_2.json": `{"address":"0xBBB","abi":[]}`,
		"Token.json":   `{"address":"0xCCC"}`,
	})
	out := t.TempDir()
	rec := ui.NewRecordingUI()

	Publish(rec, PublishOptions{In: in, Out: out, Filename: "ETH_ADDRESSES"})

	var facts []string
	for _, e := range rec.Entries() {
		if e.Method == "KeyValue" {
			facts = append(facts, e.Value)
		}
	}
	assert.Equal(t, []string{
		"Input: " + in,
		"Output: " + out,
		"Address file: " + filepath.Join(out, "ETH_ADDRESSES.json"),
		"Addresses: 3",
		"ABIs: 1 of 2 written",
	}, facts)
}
