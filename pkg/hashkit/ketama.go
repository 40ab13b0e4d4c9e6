package hashkit

import (
	"crypto/md5"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"jenkins/pkg/log"

	"github.com/pkg/errors"
)

const (
	_pointsPerServer = 160
	_pointsPerHash   = 4
	_maxHostLen      = 64
)

// ErrSpotsMismatch is returned when nodes and spots differ in length.
var ErrSpotsMismatch = errors.New("hashkit: nodes and spots length mismatch")

type point struct {
	node string
	hash uint32
}

type points []point

func (p points) Len() int           { return len(p) }
func (p points) Less(i, j int) bool { return p[i].hash < p[j].hash }
func (p points) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// HashRing is a ketama consistent hash ring.
// GetNode never blocks; membership changes rebuild the ring under lock.
type HashRing struct {
	nodes  []string
	spots  []int
	points atomic.Value
	lock   sync.Mutex
	hash   Method
}

// Ketama returns a ring hashing keys with one_at_a_time.
func Ketama() *HashRing {
	return newRingWithHash(Hash)
}

func newRingWithHash(hash Method) *HashRing {
	return &HashRing{hash: hash}
}

// Init replaces the ring members. spots weights each node.
func (h *HashRing) Init(nodes []string, spots []int) error {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.init(nodes, spots)
}

func (h *HashRing) init(nodes []string, spots []int) error {
	if len(nodes) != len(spots) {
		return errors.Wrapf(ErrSpotsMismatch, "nodes %d spots %d", len(nodes), len(spots))
	}
	var (
		ps     points
		svrn   = len(nodes)
		totalw int
	)
	for _, sp := range spots {
		totalw += sp
	}
	for idx, node := range nodes {
		if totalw == 0 {
			break
		}
		pct := float64(spots[idx]) / float64(totalw)
		perSvr := int((pct*_pointsPerServer/_pointsPerHash*float64(svrn) + 0.0000000001) * _pointsPerHash)
		for pidx := 0; pidx < perSvr/_pointsPerHash; pidx++ {
			host := node + "-" + strconv.Itoa(pidx)
			if len(host) > _maxHostLen {
				host = host[:_maxHostLen]
			}
			sum := md5.Sum([]byte(host))
			for x := 0; x < _pointsPerHash; x++ {
				ps = append(ps, point{node: node, hash: md5Word(sum, x)})
			}
		}
	}
	sort.Sort(ps)
	h.nodes = nodes
	h.spots = spots
	h.points.Store(ps)
	return nil
}

// AddNode adds node with weight spot, or updates the weight of an existing node.
func (h *HashRing) AddNode(node string, spot int) {
	h.lock.Lock()
	defer h.lock.Unlock()
	var (
		nodes  = make([]string, 0, len(h.nodes)+1)
		spots  = make([]int, 0, len(h.nodes)+1)
		exists bool
	)
	for i, nd := range h.nodes {
		nodes = append(nodes, nd)
		if nd == node {
			exists = true
			spots = append(spots, spot)
			log.Infof("ketama update node %s spot from %d to %d", nd, h.spots[i], spot)
		} else {
			spots = append(spots, h.spots[i])
		}
	}
	if !exists {
		nodes = append(nodes, node)
		spots = append(spots, spot)
		log.Infof("ketama add node %s spot %d", node, spot)
	}
	_ = h.init(nodes, spots)
}

// DelNode removes node from the ring. Unknown nodes are ignored.
func (h *HashRing) DelNode(node string) {
	h.lock.Lock()
	defer h.lock.Unlock()
	var (
		nodes []string
		spots []int
		del   bool
	)
	for i, nd := range h.nodes {
		if nd == node {
			del = true
			continue
		}
		nodes = append(nodes, nd)
		spots = append(spots, h.spots[i])
	}
	if del {
		log.Infof("ketama del node %s", node)
		_ = h.init(nodes, spots)
	}
}

// Nodes returns the current ring members.
func (h *HashRing) Nodes() []string {
	h.lock.Lock()
	defer h.lock.Unlock()
	return append([]string(nil), h.nodes...)
}

// GetNode returns the node owning key.
func (h *HashRing) GetNode(key []byte) (string, bool) {
	ps, ok := h.points.Load().(points)
	if !ok || len(ps) == 0 {
		return "", false
	}
	value := h.hash(key)
	i := sort.Search(len(ps), func(i int) bool { return ps[i].hash >= value })
	if i == len(ps) {
		i = 0
	}
	return ps[i].node, true
}
