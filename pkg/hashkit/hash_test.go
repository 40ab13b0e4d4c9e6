package hashkit

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllHashMethods(t *testing.T) {
	key := []byte("0123456789")
	assert.Equal(t, uint32(610147960), hashMD5(key), "md5")
	assert.Equal(t, uint32(2336436402), hashFnv1a64(key), "fnv1a64")
	assert.Equal(t, uint32(1576209164), hashFnv164(key), "fnv164")
	assert.Equal(t, uint32(4185952242), hashFnv1a32(key), "fnv1a32")
	assert.Equal(t, uint32(1737638188), hashFnv132(key), "fnv132")
	assert.Equal(t, uint32(2264676836), hashHsieh(key), "hsieh")
	assert.Equal(t, uint32(1957635836), hashMurmur(key), "murmur")
	assert.Equal(t, uint32(2451084222), Hash(key), "one at a time")
}

func TestHsiehTails(t *testing.T) {
	assert.Equal(t, uint32(0), hashHsieh(nil))
	assert.Equal(t, uint32(4168596326), hashHsieh([]byte("VOD.L")))
	assert.Equal(t, uint32(327428805), hashHsieh([]byte("hello")))
}

func TestNewMethod(t *testing.T) {
	for _, name := range []string{"", "jenkins", "one_on_time", HashMethodOneAtATime} {
		m, err := NewMethod(name)
		require.NoError(t, err, name)
		assert.Equal(t, uint32(0xef143afd), m([]byte("VOD.L")), name)
	}

	m, err := NewMethod(HashMethodFnv1a32)
	require.NoError(t, err)
	assert.Equal(t, uint32(193421688), m([]byte("VOD.L")))

	_, err = NewMethod("crc64")
	assert.Equal(t, ErrUnknownMethod, errors.Cause(err))
}

func TestMethods(t *testing.T) {
	names := Methods()
	assert.Len(t, names, 8)
	assert.Contains(t, names, HashMethodOneAtATime)
	assert.Contains(t, names, HashMethodMurmur)
	for i := 1; i < len(names); i++ {
		assert.True(t, names[i-1] < names[i])
	}
}

func TestNewRingOk(t *testing.T) {
	ring, err := NewRing(HashMethodOneAtATime)
	assert.NoError(t, err)
	assert.NotNil(t, ring)

	ring, err = NewRing("fnv1a_64")
	assert.NoError(t, err)
	assert.NotNil(t, ring)

	_, err = NewRing("nope")
	assert.Error(t, err)
}
