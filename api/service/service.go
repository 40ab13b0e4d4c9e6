package service

import (
	"strconv"
	"sync/atomic"

	"jenkins/api/model"
	"jenkins/config"
	"jenkins/pkg/hashkit"
	"jenkins/pkg/log"
	"jenkins/pkg/prom"

	"github.com/pkg/errors"
)

// New create new service of jenkins.
func New(cfg *config.Config) (*Service, error) {
	s := &Service{}
	if err := s.Reload(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Service is the struct for api server
type Service struct {
	ring atomic.Value
}

// Reload swaps in the ring of cfg.
func (s *Service) Reload(cfg *config.Config) error {
	ring, err := cfg.NewRing()
	if err != nil {
		return err
	}
	s.ring.Store(ring)
	log.Infof("ring reloaded with %d nodes", len(cfg.Ring.Nodes))
	return nil
}

// Hash hashes key[:n] with method. A negative n hashes the whole key.
func (s *Service) Hash(method string, key []byte, n int) (*model.Digest, error) {
	name, err := hashkit.CanonicalMethod(method)
	if err != nil {
		prom.ErrIncr(method, "unknown_method")
		return nil, err
	}
	if n < 0 {
		n = len(key)
	}
	var sum uint32
	if name == hashkit.HashMethodOneAtATime {
		sum, err = hashkit.Sum32(key, n)
	} else if n > len(key) {
		err = errors.Wrapf(hashkit.ErrInvalidLength, "len %d, available %d", n, len(key))
	} else {
		m, _ := hashkit.NewMethod(name)
		sum = m(key[:n])
	}
	if err != nil {
		prom.ErrIncr(name, "invalid_length")
		return nil, err
	}
	prom.DigestIncr(name, n)
	log.V(2).Infof("hash method(%s) len(%d) hash(%08x)", name, n, sum)
	return &model.Digest{
		Method: name,
		Len:    n,
		Hash:   sum,
		Hex:    strconv.FormatUint(uint64(sum), 16),
	}, nil
}

// Node returns the ring node owning key.
func (s *Service) Node(key string) (*model.Node, error) {
	ring, _ := s.ring.Load().(*hashkit.HashRing)
	if ring == nil {
		return nil, model.ErrNoRing
	}
	node, ok := ring.GetNode([]byte(key))
	if !ok {
		return nil, model.ErrNoRing
	}
	return &model.Node{Key: key, Node: node}, nil
}
