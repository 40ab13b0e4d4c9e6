package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"jenkins/pkg/hashkit"
	"jenkins/pkg/report"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempConf(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "jenkins-conf")
	require.NoError(t, err)
	path := filepath.Join(dir, "jenkins.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path, func() { os.RemoveAll(dir) }
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, hashkit.HashMethodOneAtATime, c.Method)
	assert.Equal(t, "standard", c.Layout)
	assert.Equal(t, report.DefaultSamples, c.Samples)
	assert.Equal(t, "127.0.0.1:2110", c.Server.Listen)
	assert.True(t, c.Server.Metrics)
	assert.Equal(t, int64(1<<20), c.Server.MaxBody)
	assert.Empty(t, c.Ring.Nodes)
	assert.Equal(t, 0, c.LogVL)
}

func TestLoadFromFile(t *testing.T) {
	path, clean := tempConf(t, `
log_vl = 3
debug = true
method = "murmur"
layout = "legacy"
samples = ["x", "y"]

[server]
listen = ":9999"

[ring]
nodes = ["a:11211", "b:11211"]
`)
	defer clean()

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.LogVL)
	assert.True(t, c.Debug)
	assert.Equal(t, "murmur", c.Method)
	assert.Equal(t, "legacy", c.Layout)
	assert.Equal(t, []string{"x", "y"}, c.Samples)
	assert.Equal(t, ":9999", c.Server.Listen)
	assert.True(t, c.Server.Metrics, "untouched keys keep defaults")
	assert.Equal(t, []int{1, 1}, c.Ring.Spots)

	ring, err := c.NewRing()
	require.NoError(t, err)
	node, ok := ring.GetNode([]byte("VOD.L"))
	assert.True(t, ok)
	assert.Contains(t, c.Ring.Nodes, node)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]error{
		`method = "sha256"`:                         hashkit.ErrUnknownMethod,
		`layout = "tsv"`:                            report.ErrUnknownLayout,
		"[ring]\nnodes = [\"a\"]\nspots = [1, 2]\n": hashkit.ErrSpotsMismatch,
	}
	for content, want := range cases {
		path, clean := tempConf(t, content)
		_, err := Load(path)
		assert.Equal(t, want, errors.Cause(err), content)
		clean()
	}

	path, clean := tempConf(t, "[server]\nmax_body = 0\n")
	_, err := Load(path)
	assert.Error(t, err)
	clean()

	path, clean = tempConf(t, "method = ")
	defer clean()
	_, err = Load(path)
	assert.Error(t, err)

	_, err = Load("/nonexistent/jenkins.toml")
	assert.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestWatch(t *testing.T) {
	path, clean := tempConf(t, `method = "hsieh"`)
	defer clean()

	ch := make(chan *Config, 16)
	w, err := Watch(path, func(c *Config) {
		select {
		case ch <- c:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, ioutil.WriteFile(path, []byte(`method = "md5"`), 0644))
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-ch:
			if c.Method == "md5" {
				return
			}
		case <-timeout:
			t.Fatal("config reload not observed")
		}
	}
}
