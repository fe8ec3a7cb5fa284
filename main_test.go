package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/env"
	"github.com/stretchr/testify/require"
)

func TestArgsRepository(t *testing.T) {
	t.Setenv("hxo_build_dir", "/env/build")
	t.Setenv("assets_dir", "/env/assets")
	t.Setenv("output_env_key", "HXO_DEX_PATH")
	t.Setenv("verbose_log", "")

	t.Log("positional arguments take precedence")
	{
		repository := newArgsRepository([]string{"/arg/build", "/arg/assets"}, env.NewRepository())

		require.Equal(t, "/arg/build", repository.Get("hxo_build_dir"))
		require.Equal(t, "/arg/assets", repository.Get("assets_dir"))
	}

	t.Log("missing arguments fall back to the environment")
	{
		repository := newArgsRepository([]string{"/arg/build"}, env.NewRepository())

		require.Equal(t, "/arg/build", repository.Get("hxo_build_dir"))
		require.Equal(t, "/env/assets", repository.Get("assets_dir"))

		repository = newArgsRepository(nil, env.NewRepository())

		require.Equal(t, "/env/build", repository.Get("hxo_build_dir"))
		require.Equal(t, "/env/assets", repository.Get("assets_dir"))
	}

	t.Log("extra arguments are ignored")
	{
		repository := newArgsRepository([]string{"/arg/build", "/arg/assets", "extra"}, env.NewRepository())

		require.Equal(t, "/arg/assets", repository.Get("assets_dir"))
		require.Equal(t, "HXO_DEX_PATH", repository.Get("output_env_key"))
	}

	t.Log("unset optional inputs get their defaults")
	{
		repository := newArgsRepository(nil, env.NewRepository())

		require.Equal(t, "false", repository.Get("verbose_log"))
		require.Equal(t, "", repository.Get("unknown_input"))
	}
}

func TestRun(t *testing.T) {
	t.Setenv("hxo_build_dir", "")
	t.Setenv("assets_dir", "")
	t.Setenv("output_env_key", "")
	t.Setenv("verbose_log", "")

	t.Log("no classes.dex exits 1 without creating the assets dir")
	{
		buildDir := t.TempDir()
		writeFile(t, filepath.Join(buildDir, "dex", "classes2.dex"), "other")
		assetsDir := filepath.Join(t.TempDir(), "assets")

		code := run([]string{buildDir, assetsDir}, env.NewRepository())

		require.Equal(t, 1, code)
		require.NoDirExists(t, assetsDir)
	}

	t.Log("classes.dex is copied to hxo.dex and exits 0")
	{
		buildDir := t.TempDir()
		writeFile(t, filepath.Join(buildDir, "intermediates", "dex", "classes.dex"), "dex\n035")
		assetsDir := filepath.Join(t.TempDir(), "src", "main", "assets")

		code := run([]string{buildDir, assetsDir}, env.NewRepository())

		require.Equal(t, 0, code)
		content, err := os.ReadFile(filepath.Join(assetsDir, "hxo.dex"))
		require.NoError(t, err)
		require.Equal(t, "dex\n035", string(content))
	}

	t.Log("missing arguments exit 1")
	{
		require.Equal(t, 1, run(nil, env.NewRepository()))
	}
}

func writeFile(t *testing.T, pth, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(pth), 0o755))
	require.NoError(t, os.WriteFile(pth, []byte(content), 0o644))
}
