package hashkit

func get16bits(key []byte) uint32 {
	return uint32(key[0]) | uint32(key[1])<<8
}

// hashHsieh is Paul Hsieh's SuperFastHash.
func hashHsieh(key []byte) uint32 {
	if len(key) == 0 {
		return 0
	}

	var (
		hash uint32
		tmp  uint32
		rem  = len(key) & 3
	)

	for n := len(key) >> 2; n > 0; n-- {
		hash += get16bits(key)
		tmp = (get16bits(key[2:]) << 11) ^ hash
		hash = (hash << 16) ^ tmp
		key = key[4:]
		hash += hash >> 11
	}

	switch rem {
	case 3:
		hash += get16bits(key)
		hash ^= hash << 16
		hash ^= uint32(key[2]) << 18
		hash += hash >> 11
	case 2:
		hash += get16bits(key)
		hash ^= hash << 11
		hash += hash >> 17
	case 1:
		hash += uint32(key[0])
		hash ^= hash << 10
		hash += hash >> 1
	}

	// force avalanching of the final 127 bits
	hash ^= hash << 3
	hash += hash >> 5
	hash ^= hash << 4
	hash += hash >> 17
	hash ^= hash << 25
	hash += hash >> 6
	return hash
}
