package service

import (
	"testing"

	"jenkins/api/model"
	"jenkins/config"
	"jenkins/pkg/hashkit"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	s, err := New(config.DefaultConfig())
	require.NoError(t, err)

	d, err := s.Hash("", []byte("VOD.L"), -1)
	require.NoError(t, err)
	assert.Equal(t, &model.Digest{Method: hashkit.HashMethodOneAtATime, Len: 5, Hash: 0xef143afd, Hex: "ef143afd"}, d)

	d, err = s.Hash("jenkins", []byte("ARM.L trailing"), 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xbc530b1e), d.Hash)

	d, err = s.Hash(hashkit.HashMethodMurmur, []byte("0123456789"), -1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1957635836), d.Hash)
}

func TestHashErrors(t *testing.T) {
	s, err := New(config.DefaultConfig())
	require.NoError(t, err)

	_, err = s.Hash("crc16", []byte("x"), -1)
	assert.Equal(t, hashkit.ErrUnknownMethod, errors.Cause(err))

	_, err = s.Hash("", []byte("x"), 2)
	assert.Equal(t, hashkit.ErrInvalidLength, errors.Cause(err))

	_, err = s.Hash(hashkit.HashMethodHsieh, []byte("x"), 2)
	assert.Equal(t, hashkit.ErrInvalidLength, errors.Cause(err))
}

func TestNode(t *testing.T) {
	cfg := config.DefaultConfig()
	s, err := New(cfg)
	require.NoError(t, err)

	_, err = s.Node("VOD.L")
	assert.Equal(t, model.ErrNoRing, err)

	cfg.Ring.Nodes = []string{"a:11211", "b:11211", "c:11211"}
	cfg.Ring.Spots = []int{1, 1, 1}
	require.NoError(t, s.Reload(cfg))
	n, err := s.Node("VOD.L")
	require.NoError(t, err)
	assert.Equal(t, "VOD.L", n.Key)
	assert.Contains(t, cfg.Ring.Nodes, n.Node)

	cfg.Ring.Spots = []int{1}
	assert.Error(t, s.Reload(cfg))
	_, err = s.Node("VOD.L")
	assert.NoError(t, err, "failed reload keeps the previous ring")
}
