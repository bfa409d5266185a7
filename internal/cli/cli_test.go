package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/nameparser/internal/model"
	"github.com/ppiankov/nameparser/internal/pipeline"
)

func TestNumericArg(t *testing.T) {
	numeric := []string{"42", "3.14", "-7", "+1", ".5", "1e9", "2.5E-3", "0x1F"}
	for _, arg := range numeric {
		assert.True(t, numericArg.MatchString(arg), arg)
	}

	names := []string{"John Smith", "Nan", "Inf", "1st", "III", "4th Duke", "", "0x", "1.2.3"}
	for _, arg := range names {
		assert.False(t, numericArg.MatchString(arg), arg)
	}
}

func TestParseNames_SkipsNumericArguments(t *testing.T) {
	cfg := model.DefaultConfig()
	p := pipeline.NewPipeline(cfg, nil)
	r, err := pipeline.NewRenderer(model.FormatJSON, false)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	err = parseNames(context.Background(), &out, &errOut, p, r, []string{"John Smith", "42", "Bruce Wayne aka Batman"})
	require.NoError(t, err)

	assert.Equal(t, "Error: Cannot parse the given input of 42\n", errOut.String())

	var names []model.ParsedName
	require.NoError(t, json.Unmarshal(out.Bytes(), &names))
	require.Len(t, names, 2)
	assert.Equal(t, "John Smith", names[0].Input)
	assert.Equal(t, model.Some("Smith"), names[0].SurName)
	assert.Equal(t, []string{"Batman"}, names[1].Aliases)
	assert.True(t, names[1].HasNonName)
}

func TestParseNames_NoArguments(t *testing.T) {
	p := pipeline.NewPipeline(model.DefaultConfig(), nil)
	r, err := pipeline.NewRenderer(model.FormatJSON, false)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	require.NoError(t, parseNames(context.Background(), &out, &errOut, p, r, nil))
	assert.Equal(t, "[]\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestParseNames_Cancelled(t *testing.T) {
	p := pipeline.NewPipeline(model.DefaultConfig(), nil)
	r, err := pipeline.NewRenderer(model.FormatJSON, false)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	assert.Error(t, parseNames(ctx, &out, &errOut, p, r, []string{"John Smith"}))
	assert.Empty(t, out.String())
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, colorEnabled(model.ColorAlways, &buf))
	assert.False(t, colorEnabled(model.ColorNever, os.Stdout))
	assert.False(t, colorEnabled(model.ColorAuto, &buf), "a buffer is never a terminal")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled(model.ColorAuto, os.Stdout))
}

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := loadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), c)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `output:
  format: text
  color: never
concurrency:
  workers: 3
cache:
  ttl: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("NAMEPARSER_LOG_LEVEL", "debug")

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("NAMEPARSER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	require.NoError(t, v.ReadInConfig())

	c, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, model.FormatText, c.Output.Format)
	assert.Equal(t, model.ColorNever, c.Output.Color)
	assert.Equal(t, 3, c.Concurrency.Workers)
	assert.Equal(t, 30*time.Second, c.Cache.TTL)
	assert.True(t, c.Cache.Enabled)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadConfig_ZeroWorkersMeansDefault(t *testing.T) {
	v := viper.New()
	v.Set("concurrency.workers", 0)

	c, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig().Concurrency.Workers, c.Concurrency.Workers)
}

func TestLoadConfig_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("output.format", "xml")

	_, err := loadConfig(v)
	assert.ErrorContains(t, err, "invalid config")
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("error", false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))

	l, err = newLogger("error", true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger("loud", false)
	assert.Error(t, err)
}

func TestInitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".nameparser", "config.yaml")

	require.NoError(t, initConfigFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Nameparser configuration file\n"))

	var c model.Config
	require.NoError(t, yaml.Unmarshal(data, &c))
	assert.Equal(t, *model.DefaultConfig(), c)

	assert.ErrorContains(t, initConfigFile(path), "already exists")
}

func TestLexicon(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listTables(&buf))
	assert.Regexp(t, `(?m)^salutations\s+\d+$`, buf.String())
	assert.Regexp(t, `(?m)^supplemental_info\s+\d+$`, buf.String())

	buf.Reset()
	require.NoError(t, printTable(&buf, "non_name"))
	assert.Equal(t, "AKA\nALIAS\nFKA\nNKA\n", buf.String())

	assert.ErrorContains(t, printTable(&buf, "nicknames"), `unknown table "nicknames"`)
}

func TestRootCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"--format", "yaml", "--color", "never", "Dr. Otto Von Bismark III", "7"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, errOut.String(), "Error: Cannot parse the given input of 7\n")

	var names []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &names))
	require.Len(t, names, 1)
	assert.Equal(t, "Dr", names[0]["salutation"])
	assert.Equal(t, "Otto", names[0]["foreName"])
	assert.Equal(t, "Von Bismark", names[0]["surName"])
	assert.Equal(t, "III", names[0]["generation"])
	assert.Equal(t, true, names[0]["hasSurNamePrefix"])
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Equal(t, "nameparser v"+Version+"\n", out.String())
}
