package config

import (
	"runtime"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.config")
	defer teardown()
	//
	c := Default()
	assert.Equal(t, 4096, c.IterationLimit)
	assert.Equal(t, 1024, c.RecursionLimit)
	assert.Equal(t, min(runtime.GOMAXPROCS(0), 1024), c.Workers)
	assert.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.config")
	defer teardown()
	//
	c, err := Load(strings.NewReader("iteration_limit: 100\nworkers: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 100, c.IterationLimit)
	assert.Equal(t, 1024, c.RecursionLimit, "missing values should be defaulted")
	assert.Equal(t, 4, c.Workers)
	//
	c, err = Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.config")
	defer teardown()
	//
	_, err := Load(strings.NewReader("workers: 0\n"))
	assert.Error(t, err)
	_, err = Load(strings.NewReader("recursion_limit: -1\n"))
	assert.Error(t, err)
	_, err = Load(strings.NewReader("trace_level: Verbose\n"))
	assert.Error(t, err)
	_, err = Load(strings.NewReader("no_such_key: 1\n"))
	assert.Error(t, err)
}

func TestConfigureTracing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.config")
	defer teardown()
	//
	c := Default()
	c.TraceLevel = "Debug"
	c.ConfigureTracing()
	tracing.Select("symex.config").Debugf("tracing configured")
	c.TraceLevel = "Error"
	c.ConfigureTracing()
	assert.Contains(t, TraceKeys, "symex.eval")
}
