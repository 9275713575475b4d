package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
version = "1"

[settings]
default_environment = "dev"

[encryption]
public_key = "age1example"

[common]
APP_NAME = "demo"
LOG_LEVEL = "info"

[environments.dev]
description = "Local development"
color = "green"
ZEBRA = "first"
APPLE = "second"

[environments.prod]
description = "Production"
extends = "dev"
requires_confirmation = true
APPLE = "prod-second"
`

func TestDecodeTOML(t *testing.T) {
	cfg, err := decodeTOML([]byte(sampleTOML))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "dev", cfg.Settings.DefaultEnvironment)

	require.NotNil(t, cfg.Encryption)
	assert.Equal(t, "age1example", cfg.Encryption.PublicKey)

	require.NotNil(t, cfg.Common)
	assert.Equal(t, []string{"APP_NAME", "LOG_LEVEL"}, cfg.Common.Keys())

	assert.Equal(t, []string{"dev", "prod"}, cfg.Names)
}

func TestDecodeTOMLSeparatesMetadata(t *testing.T) {
	cfg, err := decodeTOML([]byte(sampleTOML))
	require.NoError(t, err)

	dev := cfg.Environments["dev"]
	require.NotNil(t, dev)

	assert.Equal(t, "Local development", dev.Description)
	assert.Equal(t, "green", dev.Color)
	assert.Empty(t, dev.Extends)
	assert.Nil(t, dev.RequiresConfirmation)

	// Metadata fields must not leak into the variable table, and variable
	// declaration order must match the document.
	assert.Equal(t, []string{"ZEBRA", "APPLE"}, dev.Variables.Keys())

	prod := cfg.Environments["prod"]
	require.NotNil(t, prod)

	assert.Equal(t, "dev", prod.Extends)
	require.NotNil(t, prod.RequiresConfirmation)
	assert.True(t, *prod.RequiresConfirmation)
}

func TestDecodeTOMLNoCommon(t *testing.T) {
	cfg, err := decodeTOML([]byte(`
version = "1"

[environments.dev]
description = "Dev"
`))
	require.NoError(t, err)
	assert.Nil(t, cfg.Common)
}

func TestDecodeTOMLEmptyCommon(t *testing.T) {
	cfg, err := decodeTOML([]byte(`
version = "1"

[common]

[environments.dev]
description = "Dev"
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Common)
	assert.Zero(t, cfg.Common.Len())
}

func TestDecodeTOMLNonStringVariable(t *testing.T) {
	_, err := decodeTOML([]byte(`
version = "1"

[environments.dev]
description = "Dev"
PORT = 8080
`))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "PORT")
}

func TestDecodeTOMLNonBooleanConfirmation(t *testing.T) {
	_, err := decodeTOML([]byte(`
version = "1"

[environments.dev]
description = "Dev"
requires_confirmation = "yes"
`))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "requires_confirmation")
}

func TestDecodeYAMLLegacy(t *testing.T) {
	cfg, err := decodeYAML([]byte(`
version: "1"
settings:
  default_environment: dev
common:
  APP_NAME: demo
environments:
  dev:
    description: Local development
    color: green
    ZEBRA: first
    APPLE: second
  prod:
    description: Production
    extends: dev
    requires_confirmation: true
`))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, []string{"dev", "prod"}, cfg.Names)

	dev := cfg.Environments["dev"]
	require.NotNil(t, dev)
	assert.Equal(t, []string{"ZEBRA", "APPLE"}, dev.Variables.Keys())

	prod := cfg.Environments["prod"]
	require.NotNil(t, prod)
	assert.Equal(t, "dev", prod.Extends)
	require.NotNil(t, prod.RequiresConfirmation)
	assert.True(t, *prod.RequiresConfirmation)
}
