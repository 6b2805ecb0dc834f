package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
	apperrors "github.com/alexisbeaulieu97/statedemo/pkg/errors"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "full configuration is parsed",
			contents: `log:
  level: debug
  format: json
ui:
  start_page: store
  alt_screen: false
  unicode: false
  history_limit: 5
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, "json", cfg.Log.Format)
				require.Equal(t, PageStore, cfg.UI.StartPage)
				require.False(t, cfg.UI.AltScreen)
				require.Equal(t, 5, cfg.UI.HistoryLimit)
			},
		},
		{
			name: "partial configuration keeps defaults",
			contents: `ui:
  start_page: context
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, PageContext, cfg.UI.StartPage)
				require.Equal(t, "info", cfg.Log.Level)
				require.True(t, cfg.UI.AltScreen)
				require.Equal(t, 20, cfg.UI.HistoryLimit)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), *cfg)
			},
		},
		{
			name: "invalid yaml reports line",
			contents: `log:
  level: [info
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name: "unknown keys are rejected",
			contents: `ui:
  colour: red
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name: "bad start page fails validation",
			contents: `ui:
  start_page: settings
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "ui.start_page", validationErr.Field)
			},
		},
		{
			name: "metrics namespace is parsed",
			contents: `metrics:
  namespace: demo_app
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "demo_app", cfg.Metrics.Namespace)
			},
		},
		{
			name: "metrics namespace must be a metric name",
			contents: `metrics:
  namespace: state-demo
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "metrics.namespace", validationErr.Field)
			},
		},
		{
			name: "bad log level fails validation",
			contents: `log:
  level: chatty
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.level", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, "statedemo.yaml", tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestLoadConfigWithoutPathUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
	require.NoError(t, ValidateConfig(cfg))
}

func TestParseScript(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "script.yaml", `name: counter walk
operations:
  - inc
  - inc
  - inc
  - dec
  - toggle
`)
	script, err := ParseScript(path)
	require.NoError(t, err)
	require.Equal(t, "counter walk", script.Name)
	require.Equal(t, "both", script.Variant)

	ops, err := script.Ops()
	require.NoError(t, err)
	require.Equal(t, []appstate.Operation{
		appstate.OpIncrement, appstate.OpIncrement, appstate.OpIncrement,
		appstate.OpDecrement, appstate.OpToggleTheme,
	}, ops)
}

func TestParseScriptRejectsUnknownOperation(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "script.yaml", `name: bad
operations:
  - inc
  - square
`)
	_, err := ParseScript(path)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "operations[1]", validationErr.Field)
	require.Contains(t, validationErr.Message, "operation")
}

func TestParseScriptRequiresOperations(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "script.yaml", "name: empty\nvariant: store\n")
	_, err := ParseScript(path)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "operations", validationErr.Field)
}

func TestParseScriptExpectation(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "script.yaml", `name: walk
operations: [inc, inc, inc, dec, dec, dec, dec, dec, toggle]
expect:
  count: -2
  theme: Dark
`)
	script, err := ParseScript(path)
	require.NoError(t, err)
	require.NotNil(t, script.Expect)

	require.NoError(t, script.Check(appstate.Snapshot{Count: -2, Theme: appstate.ThemeDark}))

	err = script.Check(appstate.Snapshot{Count: 3, Theme: appstate.ThemeDark})
	require.EqualError(t, err, `script "walk" expected count -2, got 3`)

	err = script.Check(appstate.Snapshot{Count: -2, Theme: appstate.ThemeLight})
	require.EqualError(t, err, `script "walk" expected theme dark, got light`)
}

func TestParseScriptWithoutExpectationAlwaysPasses(t *testing.T) {
	t.Parallel()

	script := &Script{Name: "free", Operations: []string{"inc"}}
	require.NoError(t, script.Check(appstate.Snapshot{Count: 99, Theme: appstate.ThemeDark}))
}

func TestParseScriptRejectsUnknownTheme(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "script.yaml", `name: sepia
operations: [toggle]
expect:
  theme: sepia
`)
	_, err := ParseScript(path)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "expect.theme", validationErr.Field)
}
