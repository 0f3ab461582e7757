package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/destinymatrix/birthdate"
	"github.com/katalvlaran/destinymatrix/matrix"
	"github.com/katalvlaran/destinymatrix/node"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	goleak.VerifyTestMain(m)
}

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

// decoded mirrors Result for decoding JSON output.
type decoded struct {
	Date       string            `json:"date"`
	Variant    string            `json:"variant"`
	Base       matrix.Base       `json:"base"`
	Nodes      map[string]int    `json:"nodes"`
	Dimensions []json.RawMessage `json:"dimensions"`
}

func TestCompute_DefaultsToDigitSumJSON(t *testing.T) {
	out, err := run(t, "compute", "1993-05-19")
	require.NoError(t, err)

	var got []decoded
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "1993-05-19", got[0].Date)
	assert.Equal(t, "digitsum", got[0].Variant)
	assert.Equal(t, matrix.Base{D: 19, M: 5, Y: 22}, got[0].Base)
	assert.Len(t, got[0].Nodes, 48)
	assert.Equal(t, 11, got[0].Nodes["XY(0)"])
	assert.Empty(t, got[0].Dimensions)
}

func TestCompute_KeepsInputOrder(t *testing.T) {
	dates := []string{"2005-05-31", "1993-05-19", "2000-01-29", "1970-01-01", "2024-02-29"}
	out, err := run(t, append([]string{"compute", "--variant", "modulo", "--cache-size", "4"}, dates...)...)
	require.NoError(t, err)

	var got []decoded
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, len(dates))
	for i, d := range dates {
		assert.Equal(t, d, got[i].Date)
		assert.Equal(t, "modulo", got[i].Variant)
		assert.Len(t, got[i].Nodes, 36)
	}
	assert.Equal(t, 22, got[0].Nodes["XY(0)"])
	assert.Equal(t, 2, got[1].Nodes["XY(0)"])
}

func TestCompute_Dimensions(t *testing.T) {
	out, err := run(t, "compute", "1993-05-19", "--variant", "modulo", "--dimensions")
	require.NoError(t, err)

	var got []struct {
		Dimensions []map[string]string `json:"dimensions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	require.Len(t, got[0].Dimensions, 8)
	assert.Equal(t, map[string]string{"dimensionKey": "xy0_core", "valueKey": "2"}, got[0].Dimensions[0])
}

func TestCompute_YAML(t *testing.T) {
	out, err := run(t, "compute", "2005-05-31", "-o", "yaml")
	require.NoError(t, err)

	var got []struct {
		Date    string         `yaml:"date"`
		Variant string         `yaml:"variant"`
		Base    matrix.Base    `yaml:"base"`
		Nodes   map[string]int `yaml:"nodes"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2005-05-31", got[0].Date)
	assert.Equal(t, matrix.Base{D: 31, M: 5, Y: 7}, got[0].Base)
	assert.Equal(t, 5, got[0].Nodes["XY(0)"])
}

func TestCompute_Table(t *testing.T) {
	out, err := run(t, "compute", "1993-05-19", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "1993-05-19 (digitsum)  D=19 M=5 Y=22")
	assert.Contains(t, out, "Node")
	assert.Contains(t, out, "XY(0)")
	assert.Contains(t, out, "xy0_core")
	assert.Contains(t, out, "C(9)")
}

func TestCompute_InvalidDate(t *testing.T) {
	out, err := run(t, "compute", "1993-05-19", "1993-02-30")
	require.Error(t, err)
	assert.Empty(t, out, "nothing is printed when any date fails")
	assert.ErrorIs(t, err, birthdate.ErrOutOfRangeDate)

	var fe *birthdate.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, birthdate.FieldDay, fe.Field)
	assert.Contains(t, err.Error(), "input #2")

	_, err = run(t, "compute", "19.05.1993")
	assert.ErrorIs(t, err, birthdate.ErrInvalidDateFormat)

	_, err = run(t, "compute")
	assert.Error(t, err, "at least one date is required")
}

func TestConfig_EnvironmentAndFlags(t *testing.T) {
	t.Setenv("DESTINY_VARIANT", "modulo")

	out, err := run(t, "compute", "1993-05-19")
	require.NoError(t, err)
	assert.Contains(t, out, `"variant": "modulo"`)

	out, err = run(t, "compute", "1993-05-19", "--variant", "digitsum")
	require.NoError(t, err)
	assert.Contains(t, out, `"variant": "digitsum"`, "flags take precedence over the environment")
}

func TestConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "destiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: modulo\nformat: yaml\ndimensions: true\n"), 0o600))

	out, err := run(t, "--config", path, "compute", "1993-05-19")
	require.NoError(t, err)
	assert.Contains(t, out, "variant: modulo")
	assert.Contains(t, out, "dimensionKey: xy0_core")

	_, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "variants")
	assert.Error(t, err)
}

func TestConfig_Invalid(t *testing.T) {
	_, err := run(t, "compute", "1993-05-19", "--variant", "lunar")
	assert.ErrorIs(t, err, matrix.ErrUnknownVariant)

	_, err = run(t, "compute", "1993-05-19", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "json, yaml, table")

	_, err = run(t, "compute", "1993-05-19", "--cache-size", "-1")
	assert.Error(t, err)
}

func TestNodes_Catalog(t *testing.T) {
	out, err := run(t, "nodes")
	require.NoError(t, err)

	var got []struct {
		Node      string   `json:"node"`
		Variants  []string `json:"variants"`
		Dimension string   `json:"dimension"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 49)

	byNode := make(map[string][]string, len(got))
	for _, e := range got {
		byNode[e.Node] = e.Variants
		if e.Node == "XY(0)" {
			assert.Equal(t, "xy0_core", e.Dimension)
		}
	}
	assert.Equal(t, []string{"modulo", "digitsum"}, byNode["XY(0)"])
	assert.Equal(t, []string{"modulo"}, byNode["C(10)"])
	assert.Equal(t, []string{"digitsum"}, byNode["N(7)"])
}

func TestNodes_Formulas(t *testing.T) {
	out, err := run(t, "nodes", "--formulas", "--variant", "modulo", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "X(-4) + Y(4) + X(5) + Y(-3)")
	assert.Contains(t, out, "2·D")
	assert.Contains(t, out, "health")
}

func TestVariants(t *testing.T) {
	out, err := run(t, "variants")
	require.NoError(t, err)

	var got []struct {
		Name      string            `json:"name"`
		Strategy  string            `json:"strategy"`
		Nodes     int               `json:"nodes"`
		Fallbacks []matrix.Fallback `json:"fallbacks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "modulo", got[0].Name)
	assert.Equal(t, 36, got[0].Nodes)
	assert.Len(t, got[0].Fallbacks, 9)
	assert.True(t, got[0].Fallbacks[8].Drop())
	assert.Equal(t, "digitsum", got[1].Name)
	assert.Equal(t, 48, got[1].Nodes)
	assert.Empty(t, got[1].Fallbacks)

	out, err = run(t, "variants", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "modulo fallbacks")
	assert.Contains(t, out, "(dropped)")
	assert.NotContains(t, out, "digitsum fallbacks")
}

func TestDimensions(t *testing.T) {
	out, err := run(t, "dimensions", "-o", "yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "system: matrix\n"), out)
	assert.Contains(t, out, "key: c1_health_root")
	assert.Contains(t, out, "node: C(1)")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zap.WarnLevel, levelFor(0))
	assert.Equal(t, zap.InfoLevel, levelFor(1))
	assert.Equal(t, zap.DebugLevel, levelFor(2))
	assert.Equal(t, zap.DebugLevel, levelFor(5))
}

func TestNewLogger(t *testing.T) {
	for _, cfg := range []LogConfig{{}, {JSON: true, Verbose: 2}} {
		l, err := newLogger(cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg.Verbose >= 2, l.Core().Enabled(zap.DebugLevel))
	}
}

func TestTrace(t *testing.T) {
	out, err := run(t, "trace", "N(4)")
	require.NoError(t, err)

	var got TraceList
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, matrix.VariantDigitSum, got.Variant)
	assert.Equal(t, "dependents", got.Direction)
	require.Len(t, got.Nodes, 2)
	assert.Equal(t, "N(6)", got.Nodes[0].Node.String())

	out, err = run(t, "trace", "XY(0)", "--inputs", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "XY(0) dependencies (digitsum)")
	assert.Contains(t, out, "Y(-3)")

	_, err = run(t, "trace", "N(7)", "--variant", "modulo")
	assert.ErrorIs(t, err, matrix.ErrNodeNotInVariant)

	_, err = run(t, "trace", "Q(1)")
	assert.Error(t, err)
}

func TestTrace_DepthAndPath(t *testing.T) {
	out, err := run(t, "trace", "N(4)", "--depth", "1")
	require.NoError(t, err)
	var list TraceList
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list.Nodes, 1)
	assert.Equal(t, "N(6)", list.Nodes[0].Node.String())

	out, err = run(t, "trace", "N(4)", "--path", "N(7)")
	require.NoError(t, err)
	var path PathList
	require.NoError(t, json.Unmarshal([]byte(out), &path))
	assert.Equal(t, []node.ID{node.N(4), node.N(6), node.N(7)}, path.Path)

	out, err = run(t, "trace", "X(-4)", "--path", "XY(0)", "--variant", "modulo", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "X(-4) → XY(0) (modulo)")

	_, err = run(t, "trace", "X(-4)", "--path", "B(3)", "--variant", "modulo")
	assert.ErrorIs(t, err, matrix.ErrNoPath)

	_, err = run(t, "trace", "N(4)", "--depth", "-1")
	assert.Error(t, err)
}
