package config

import (
	"jenkins/pkg/hashkit"
	"jenkins/pkg/log"
	"jenkins/pkg/report"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the jenkins tool config.
type Config struct {
	log.Config
	Method  string       `toml:"method"`
	Layout  string       `toml:"layout"`
	Samples []string     `toml:"samples"`
	Server  ServerConfig `toml:"server"`
	Ring    RingConfig   `toml:"ring"`
}

// ServerConfig is the http api config.
type ServerConfig struct {
	Listen  string `toml:"listen"`
	Metrics bool   `toml:"metrics"`
	// MaxBody caps the POST /hash body in bytes.
	MaxBody int64 `toml:"max_body"`
}

// RingConfig lists the ketama ring members and their weights.
type RingConfig struct {
	Method string   `toml:"method"`
	Nodes  []string `toml:"nodes"`
	Spots  []int    `toml:"spots"`
}

// DefaultConfig new config by default string.
func DefaultConfig() *Config {
	c := &Config{}
	if _, err := toml.Decode(defaultConfig, c); err != nil {
		panic(err)
	}
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return c
}

// LoadFromFile load from file over the defaults already in c.
func (c *Config) LoadFromFile(path string) error {
	_, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrapf(err, "Load From File:%s", path)
	}
	return errors.Wrapf(c.Validate(), "Validate File:%s", path)
}

// Load returns the defaults overlaid with the file at path.
func Load(path string) (*Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	if err := c.LoadFromFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate validate config field value.
func (c *Config) Validate() error {
	if _, err := hashkit.CanonicalMethod(c.Method); err != nil {
		return err
	}
	if _, err := report.ParseLayout(c.Layout); err != nil {
		return err
	}
	if c.Server.MaxBody <= 0 {
		return errors.Errorf("server max_body %d must be positive", c.Server.MaxBody)
	}
	if _, err := hashkit.CanonicalMethod(c.Ring.Method); err != nil {
		return errors.Wrap(err, "ring")
	}
	if len(c.Ring.Spots) == 0 && len(c.Ring.Nodes) > 0 {
		c.Ring.Spots = make([]int, len(c.Ring.Nodes))
		for i := range c.Ring.Spots {
			c.Ring.Spots[i] = 1
		}
	}
	if len(c.Ring.Nodes) != len(c.Ring.Spots) {
		return errors.Wrapf(hashkit.ErrSpotsMismatch, "ring nodes %d spots %d", len(c.Ring.Nodes), len(c.Ring.Spots))
	}
	for i, sp := range c.Ring.Spots {
		if sp < 0 {
			return errors.Errorf("ring node %s has negative spot %d", c.Ring.Nodes[i], sp)
		}
	}
	return nil
}

// NewRing builds the ketama ring described by the config.
func (c *Config) NewRing() (*hashkit.HashRing, error) {
	ring, err := hashkit.NewRing(c.Ring.Method)
	if err != nil {
		return nil, err
	}
	if err = ring.Init(c.Ring.Nodes, c.Ring.Spots); err != nil {
		return nil, err
	}
	return ring, nil
}

const defaultConfig = `
##################################################
#                                                #
#                    jenkins                     #
#      one-at-a-time hashing toolkit config      #
#                                                #
##################################################

# log file base path, rolled daily as {log}.{date}. empty disables file logging.
log = ""
# log verbose level.
log_vl = 0
# print log into stdout.
stdout = false
debug = false

# hash method: one_at_a_time, fnv1a_64, fnv1_64, fnv1a_32, fnv1_32, md5, hsieh, murmur.
method = "one_at_a_time"

# csv layout: "standard" writes value,len,hash rows;
# "legacy" writes len,hash,value rows under the same header.
layout = "standard"

# records hashed by the csv command when no input is given.
samples = ["VOD.L", "hello", "plane", "A", "B", "C", "A", "a", "BT.L", "ARM.L"]

[server]
listen = "127.0.0.1:2110"
metrics = true
# max POST /hash body size in bytes.
max_body = 1048576

[ring]
method = "one_at_a_time"
nodes = []
spots = []
`
