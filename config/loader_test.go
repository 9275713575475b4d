package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/stand/pkg"
)

func writeProject(t *testing.T, name, content string) string {
	t.Helper()

	root := t.TempDir()

	err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644)
	require.NoError(t, err)

	return root
}

func TestLoadFullPipeline(t *testing.T) {
	t.Setenv("STAND_LOADER_REGION", "eu-west-1")

	root := writeProject(t, pkg.ConfigFileName, `
version = "1"

[common]
APP_NAME = "demo"

[environments.base]
description = "Base"
URL = "https://example.com"

[environments.prod]
description = "Production in ${STAND_LOADER_REGION}"
extends = "base"
REGION = "${STAND_LOADER_REGION}"
`)

	cfg, err := Load(root)
	require.NoError(t, err)

	prod := cfg.Environments["prod"]
	require.NotNil(t, prod)

	assert.Equal(t, "Production in eu-west-1", prod.Description)
	assert.Equal(t, []string{"APP_NAME", "URL", "REGION"}, prod.Variables.Keys())
	assert.Equal(t, "eu-west-1", prod.Variables.GetOr("REGION", ""))
}

func TestLoadRejectsInvalidBeforeInheritance(t *testing.T) {
	root := writeProject(t, pkg.ConfigFileName, `
version = "1"

[environments.a]
description = "A"
extends = "b"

[environments.b]
description = "B"
extends = "a"
`)

	_, err := Load(root)

	var cycleErr *CircularReferenceError
	require.ErrorAs(t, err, &cycleErr)
}

func TestLoadLegacyYAML(t *testing.T) {
	root := writeProject(t, pkg.LegacyConfigFileName, `
version: "1"
environments:
  dev:
    description: Dev
    KEY: value
`)

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "value",
		cfg.Environments["dev"].Variables.GetOr("KEY", ""))
}

func TestLoadPrefersTOMLOverLegacy(t *testing.T) {
	root := writeProject(t, pkg.ConfigFileName, `
version = "1"

[environments.dev]
description = "From TOML"
`)

	err := os.WriteFile(
		filepath.Join(root, pkg.LegacyConfigFileName),
		[]byte("version: \"1\"\nenvironments:\n  dev:\n    description: From YAML\n"),
		0o644,
	)
	require.NoError(t, err)

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "From TOML", cfg.Environments["dev"].Description)
}

func TestLoadMissingDocument(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), pkg.ConfigFileName))

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
}

func TestLoadMalformedTOML(t *testing.T) {
	root := writeProject(t, pkg.ConfigFileName, "version = \"1\n")

	_, err := Load(root)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg, err := decodeTOML([]byte(sampleTOML))
	require.NoError(t, err)

	again, err := decodeTOML([]byte(Encode(cfg)))
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, again.Version)
	assert.Equal(t, cfg.Names, again.Names)
	assert.Equal(t, cfg.Settings, again.Settings)
	assert.Equal(t, cfg.Encryption, again.Encryption)
	assert.Equal(t, cfg.Common.Keys(), again.Common.Keys())

	for _, name := range cfg.Names {
		want := cfg.Environments[name]
		got := again.Environments[name]

		assert.Equal(t, want.Description, got.Description)
		assert.Equal(t, want.Extends, got.Extends)
		assert.Equal(t, want.Color, got.Color)
		assert.Equal(t, want.Variables.Keys(), got.Variables.Keys(), name)
		assert.Equal(t, want.Variables.Map(), got.Variables.Map(), name)
	}
}

func TestEncodeQuoting(t *testing.T) {
	cfg := testConfiguration(map[string]*Environment{
		"dev": testEnvironment("Has \"quotes\" and\nnewlines", ""),
	}, "dev")
	cfg.Environments["dev"].Variables = varsOf("KEY", "tab\there")

	again, err := decodeTOML([]byte(Encode(cfg)))
	require.NoError(t, err)

	assert.Equal(t, "Has \"quotes\" and\nnewlines",
		again.Environments["dev"].Description)
	assert.Equal(t, "tab\there",
		again.Environments["dev"].Variables.GetOr("KEY", ""))
}
