package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		ModelPath: "model.xml",
		Report:    "all",
		OutDir:    ".",
		Format:    "dot",
		DotBinary: "dot",
		LogFormat: "text",
		LogLevel:  "info",
	}
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:   "neo4j export",
			mutate: func(c *Config) { c.Neo4jURI = "bolt://localhost:7687"; c.Neo4jUser = "neo4j" },
		},
		{
			name:    "missing model path",
			mutate:  func(c *Config) { c.ModelPath = "" },
			wantErr: "ModelPath: field is required",
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Format = "bmp" },
			wantErr: `Format: "bmp" is not one of [dot svg png pdf yaml]`,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "trace" },
			wantErr: `LogLevel: "trace" is not one of [debug info warn error]`,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: `LogFormat: "xml" is not one of [text json]`,
		},
		{
			name:    "neo4j user required with uri",
			mutate:  func(c *Config) { c.Neo4jURI = "neo4j://db:7687" },
			wantErr: "Neo4jUser: field is required when Neo4jURI is set",
		},
		{
			name:    "malformed neo4j uri",
			mutate:  func(c *Config) { c.Neo4jURI = "not a uri"; c.Neo4jUser = "neo4j" },
			wantErr: `Neo4jURI: "not a uri" is not a valid URI`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			got, err := NewConfig(cfg)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, cfg, *got)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
