package hashkit

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nodes = []string{
		"test1.server.com",
		"test2.server.com",
		"test3.server.com",
		"test4.server.com",
	}
	sis   = []int{1, 1, 2, 5}
	node5 = "test5.server.com"
)

func distribute(t *testing.T, ring *HashRing, n int) map[string]int {
	m := make(map[string]int)
	for i := 0; i < n; i++ {
		bs := []byte("test value" + strconv.Itoa(i))
		orig := append([]byte(nil), bs...)
		node, ok := ring.GetNode(bs)
		if ok {
			m[node]++
		} else {
			m[""]++
		}
		if !bytes.Equal(orig, bs) {
			t.Fatal("hash changed the key bytes")
		}
	}
	return m
}

func TestRingMembership(t *testing.T) {
	ring := Ketama()
	_, ok := ring.GetNode([]byte("empty"))
	assert.False(t, ok)

	require.NoError(t, ring.Init(nodes, sis))
	m := distribute(t, ring, 100000)
	for _, node := range nodes {
		assert.NotZero(t, m[node], node)
	}
	assert.Zero(t, m[""])
	assert.True(t, m[nodes[3]] > m[nodes[0]], "heavier node should own more keys: %v", m)

	ring.AddNode(nodes[3], 1)
	assert.Equal(t, nodes, ring.Nodes())

	ring.AddNode(node5, 5)
	m = distribute(t, ring, 10000)
	assert.NotZero(t, m[node5])

	ring.DelNode(nodes[0])
	m = distribute(t, ring, 10000)
	assert.Zero(t, m[nodes[0]])

	ring.DelNode("wocao")
	assert.Len(t, ring.Nodes(), 4)

	for _, node := range append(nodes, node5) {
		ring.DelNode(node)
	}
	_, ok = ring.GetNode([]byte("gone"))
	assert.False(t, ok)
}

func TestRingStable(t *testing.T) {
	a, err := NewRing(HashMethodOneAtATime)
	require.NoError(t, err)
	b := Ketama()
	require.NoError(t, a.Init(nodes, sis))
	require.NoError(t, b.Init(nodes, sis))
	for i := 0; i < 1000; i++ {
		key := []byte("k" + strconv.Itoa(i))
		na, _ := a.GetNode(key)
		nb, _ := b.GetNode(key)
		assert.Equal(t, na, nb)
	}
}

func TestRingInitMismatch(t *testing.T) {
	ring := Ketama()
	err := ring.Init(nodes, []int{1})
	assert.Equal(t, ErrSpotsMismatch, errors.Cause(err))
	_, ok := ring.GetNode([]byte("x"))
	assert.False(t, ok)
}

func BenchmarkRingGetNode(b *testing.B) {
	ring := Ketama()
	_ = ring.Init(nodes, sis)
	for i := 0; i < b.N; i++ {
		ring.GetNode([]byte("test value" + strconv.Itoa(i)))
	}
}
