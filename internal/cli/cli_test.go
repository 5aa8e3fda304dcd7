package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/boxtree/internal/scene"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "boxtree", cmd.Use)

	for _, name := range []string{"compute", "check", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	cfg := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, cfg)
	assert.Equal(t, "", cfg.DefValue)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "boxtree version "+Version+"\n", out)
}

func TestCompute_Text(t *testing.T) {
	out, err := run(t, "compute", "--no-color", "testdata/app.yaml")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "compute_text", []byte(out))
}

func TestCompute_JSON(t *testing.T) {
	out, err := run(t, "compute", "--format", "json", "testdata/app.yaml")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "compute_json", []byte(out))
}

func TestCompute_YAML(t *testing.T) {
	out, err := run(t, "compute", "-f", "yaml", "testdata/app.yaml")
	require.NoError(t, err)

	var results []scene.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "app", results[0].Scene)
	require.NotNil(t, results[0].Root)
	assert.Equal(t, float32(40), results[0].Root.Width)
	assert.Len(t, results[0].Root.Children, 2)
}

func TestCompute_Unrounded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thirds.yaml")
	content := `name: thirds
available: {width: 10, height: 1}
root:
  style: {width: 10, height: 1}
  children:
    - {id: a, style: {grow: 1}}
    - {id: b, style: {grow: 1}}
    - {id: c, style: {grow: 1}}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := run(t, "compute", "-f", "yaml", "--unrounded", path)
	require.NoError(t, err)

	var results []scene.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	b := results[0].Root.Children[1]
	assert.InDelta(t, 10.0/3, b.X, 0.001)
	assert.InDelta(t, 10.0/3, b.Width, 0.001)
}

func TestCompute_ConfigFormat(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("version: 1\noutput: {format: json}\n"), 0644))

	out, err := run(t, "--config", cfg, "compute", "testdata/app.yaml")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "compute_json", []byte(out))
}

func TestCompute_OutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	out, err := run(t, "compute", "--format", "json", "--out-dir", dir, "testdata/app.yaml")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(filepath.Join(dir, "app.json"))
	require.NoError(t, err)
	newGoldie(t).Assert(t, "compute_json", data)
}

func TestCompute_OutDirNameCollision(t *testing.T) {
	src := t.TempDir()
	for file, name := range map[string]string{"a.yaml": "My Scene", "b.yaml": "my scene!"} {
		content := "name: " + name + "\navailable: {width: 4, height: 4}\nroot:\n  style: {width: 2, height: 2}\n"
		require.NoError(t, os.WriteFile(filepath.Join(src, file), []byte(content), 0644))
	}
	dir := filepath.Join(t.TempDir(), "out")

	_, err := run(t, "compute", "-f", "json", "-o", dir, src)
	require.NoError(t, err)

	for file, want := range map[string]string{"my-scene.json": "My Scene", "my-scene-2.json": "my scene!"} {
		data, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err)
		var results []scene.Result
		require.NoError(t, json.Unmarshal(data, &results))
		require.Len(t, results, 1)
		assert.Equal(t, want, results[0].Scene, file)
	}
}

func TestOutName(t *testing.T) {
	used := make(map[string]bool)
	var got []string
	for _, name := range []string{"My Scene", "my scene!", "", "my-scene-2", "???"} {
		got = append(got, outName(name, used))
	}
	assert.Equal(t, []string{"my-scene", "my-scene-2", "scene", "my-scene-2-2", "scene-2"}, got)
}

func TestCompute_Errors(t *testing.T) {
	type tc struct {
		args     []string
		wantCode int
	}

	tests := map[string]tc{
		"missing file": {
			args:     []string{"compute", "testdata/missing.yaml"},
			wantCode: ExitCommandError,
		},
		"invalid format": {
			args:     []string{"compute", "--format", "xml", "testdata/app.yaml"},
			wantCode: ExitCommandError,
		},
		"invalid scene": {
			args:     []string{"compute", "testdata/invalid.yaml"},
			wantCode: ExitFailure,
		},
		"missing config": {
			args:     []string{"--config", "testdata/missing-config.yaml", "compute", "testdata/app.yaml"},
			wantCode: ExitCommandError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, GetExitCode(err))
		})
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "testdata/app.yaml")
	require.NoError(t, err)
	assert.Equal(t, "ok   testdata/app.yaml (5 nodes)\n", out)
}

func TestCheck_ReportsEveryFailure(t *testing.T) {
	out, err := run(t, "check", "testdata/app.yaml", "testdata/invalid.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "ok   testdata/app.yaml")
	assert.Contains(t, out, "FAIL testdata/invalid.yaml")
	assert.Contains(t, out, "name is required")
	assert.Contains(t, out, `unknown direction "diagonal"`)
}

func TestCollectSceneFiles(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(nested, 0755))
	for _, name := range []string{"scene10.yaml", "scene2.yaml", "scene1.yml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(nested, "deep.yaml"), nil, 0644))

	t.Run("directory", func(t *testing.T) {
		files, err := collectSceneFiles([]string{dir})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "scene1.yml"),
			filepath.Join(dir, "scene2.yaml"),
			filepath.Join(dir, "scene10.yaml"),
		}, files)
	})

	t.Run("recursive", func(t *testing.T) {
		files, err := collectSceneFiles([]string{dir + "/..."})
		require.NoError(t, err)
		assert.Len(t, files, 4)
		assert.Contains(t, files, filepath.Join(nested, "deep.yaml"))
	})

	t.Run("duplicates removed", func(t *testing.T) {
		f := filepath.Join(dir, "scene2.yaml")
		files, err := collectSceneFiles([]string{f, f})
		require.NoError(t, err)
		assert.Equal(t, []string{f}, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := collectSceneFiles([]string{filepath.Join(dir, "nope")})
		assert.Error(t, err)
	})
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := WrapExitError(ExitCommandError, "outer", errors.New("inner"))
	assert.Equal(t, "outer: inner", wrapped.Error())
	assert.Equal(t, "inner", errors.Unwrap(wrapped).Error())
}
