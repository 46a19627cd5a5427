package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chazu/geokernel/pkg/engine"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConf() *viper.Viper {
	v := viper.New()
	v.Set("timeout", engine.DefaultTimeout)
	v.Set("tolerance", 1e-9)
	v.Set("log_level", "warn")
	return v
}

func TestRunEvalPrintsLastValue(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runEval(testConf(), "(volume (box (vec3 0 0 0) (vec3 2 2 2)))", &stdout, &stderr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), "8"), stdout.String())
}

func TestRunEvalReportsEvalErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runEval(testConf(), "(volume 3)", &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 evaluation error")
	assert.Contains(t, stderr.String(), "expected box")
	assert.Empty(t, stdout.String())
}

func TestRunEvalRejectsBadLogLevel(t *testing.T) {
	v := testConf()
	v.Set("log_level", "loud")
	err := runEval(v, "(+ 1 2)", &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "log_level")
}

func TestRunEvalLogsAtDebug(t *testing.T) {
	v := testConf()
	v.Set("log_level", "debug")
	v.Set("timeout", time.Second)
	var stdout, stderr bytes.Buffer
	require.NoError(t, runEval(v, "(+ 1 2)", &stdout, &stderr))
	assert.Equal(t, "3\n", stdout.String())
	assert.True(t, strings.Contains(stderr.String(), "evaluation finished"), stderr.String())
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.lisp")
	require.NoError(t, os.WriteFile(path, []byte("(+ 1 2)"), 0o600))

	source, err := readSource(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)", string(source))

	source, err = readSource("-", strings.NewReader("(* 2 3)"))
	require.NoError(t, err)
	assert.Equal(t, "(* 2 3)", string(source))

	_, err = readSource(filepath.Join(t.TempDir(), "missing.lisp"), nil)
	assert.Error(t, err)
}
