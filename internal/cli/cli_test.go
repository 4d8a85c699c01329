package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"skyline/internal/config"
	"skyline/internal/models"
)

const classicJSON = `[[2,9,10],[3,7,15],[5,12,12],[15,20,10],[19,24,8]]`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestComputeStdinJSON(t *testing.T) {
	out, err := run(t, classicJSON, "compute", "--format", "json")
	require.NoError(t, err)

	var res models.SkylineResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []models.Point{{2, 10}, {3, 15}, {7, 12}, {12, 0}, {15, 10}, {20, 8}, {24, 0}}, res.Skyline)
	assert.Nil(t, res.Summary)
	assert.Equal(t, 5, res.Buildings)
}

func TestComputeCSVFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.csv")
	require.NoError(t, os.WriteFile(path, []byte("left,right,height\n0,2,3\n2,4,3\n"), 0o600))

	out, err := run(t, "", "compute", path, "--format", "yaml", "--summary")
	require.NoError(t, err)

	var res models.SkylineResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, []models.Point{{0, 3}, {4, 0}}, res.Skyline)
	require.NotNil(t, res.Summary)
	assert.Equal(t, 12.0, res.Summary.Area)
}

func TestComputeJSONFileTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.json")
	require.NoError(t, os.WriteFile(path, []byte(classicJSON), 0o600))

	out, err := run(t, "", "compute", path, "--summary")
	require.NoError(t, err)

	assert.Contains(t, out, "Skyline (5 buildings)")
	assert.Contains(t, out, "HEIGHT")
	assert.Contains(t, out, "212")
}

func TestComputeErrors(t *testing.T) {
	_, err := run(t, `[[5,1,2]]`, "compute")
	assert.ErrorContains(t, err, "Left position must be less than right position")

	_, err = run(t, classicJSON, "compute", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")

	_, err = run(t, "", "compute", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestServeShutsDown(t *testing.T) {
	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 0, BodyLimit: "1M", ShutdownTimeout: time.Second},
		Logging: config.LoggingConfig{Level: "off"},
		Engine:  config.EngineConfig{MaxBuildings: 10},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, Serve(ctx, cfg))
}

func TestServeFailureOmitsUsage(t *testing.T) {
	cmd := NewServeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})

	require.Error(t, cmd.Execute())
	assert.True(t, cmd.SilenceUsage)
	assert.NotContains(t, out.String(), "Usage:")
}
