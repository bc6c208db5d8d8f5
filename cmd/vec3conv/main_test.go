package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/internal/batch"
	"github.com/katalvlaran/lvgeom/internal/config"
	"github.com/katalvlaran/lvgeom/vector3"
)

const job = `
precision: float64
points:
  - cylindrical: {radius: 2, azimuth: 0, height: 5}
  - cartesian: {x: 1, y: 2, z: 3}
  - spherical: {radius: 1, azimuthal_angle: 2, polar_angle: 0}
`

func writeJob(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_Text(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"-config", writeJob(t, job), "-output", "text"}, &out, &errOut, zap.NewNop())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "(2, 0, 5)", lines[0])
	assert.Equal(t, "(1, 2, 3)", lines[1])
}

func TestRun_YAML(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", writeJob(t, job)}, &out, &bytes.Buffer{}, zap.NewNop())
	require.NoError(t, err)

	var doc struct {
		Precision string                     `yaml:"precision"`
		Vectors   []vector3.Vector3[float64] `yaml:"vectors"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "float64", doc.Precision)
	require.Len(t, doc.Vectors, 3)
	assert.Equal(t, vector3.New(2.0, 0, 5.0), doc.Vectors[0])
	assert.True(t, vector3.Up64().ApproxEqual(doc.Vectors[2], 1e-15))
}

func TestRun_JSONFloat32(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-config", writeJob(t, job), "-output", "json", "-precision", "float32", "-workers", "2"}
	require.NoError(t, run(context.Background(), args, &out, &bytes.Buffer{}, zap.NewNop()))

	var doc struct {
		Precision string                     `json:"precision"`
		Vectors   []vector3.Vector3[float32] `json:"vectors"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "float32", doc.Precision)
	assert.Equal(t, vector3.New[float32](1, 2, 3), doc.Vectors[1])
}

func TestRun_RejectedPointsStillWritten(t *testing.T) {
	body := job + "  - {}\n"
	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", writeJob(t, body), "-output", "text"}, &out, &bytes.Buffer{}, zap.NewNop())
	assert.ErrorIs(t, err, batch.ErrEmptyPoint)
	assert.Equal(t, 4, strings.Count(out.String(), "\n"))
}

func TestRun_Errors(t *testing.T) {
	var errOut bytes.Buffer
	err := run(context.Background(), nil, &bytes.Buffer{}, &errOut, zap.NewNop())
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, errOut.String(), "-config is required")

	err = run(context.Background(), []string{"-bogus"}, &bytes.Buffer{}, &bytes.Buffer{}, zap.NewNop())
	assert.ErrorIs(t, err, errUsage)

	err = run(context.Background(), []string{"-config", writeJob(t, job), "-precision", "float128"}, &bytes.Buffer{}, &bytes.Buffer{}, zap.NewNop())
	assert.ErrorIs(t, err, config.ErrBadPrecision)

	err = run(context.Background(), []string{"-config", writeJob(t, "points: []\n")}, &bytes.Buffer{}, &bytes.Buffer{}, zap.NewNop())
	assert.ErrorIs(t, err, config.ErrNoPoints)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx, []string{"-config", writeJob(t, job)}, &bytes.Buffer{}, &bytes.Buffer{}, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}
