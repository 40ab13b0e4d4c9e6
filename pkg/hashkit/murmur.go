package hashkit

import (
	"crypto/md5"

	"github.com/aviddiviner/go-murmur"
)

func hashMurmur(key []byte) uint32 {
	klen := uint32(len(key))
	return murmur.MurmurHash2(key, 0xdeadbeef*klen)
}

// hashMD5 folds the first four bytes of the md5 sum, little endian.
func hashMD5(key []byte) uint32 {
	sum := md5.Sum(key)
	return md5Word(sum, 0)
}

func md5Word(sum [md5.Size]byte, alignment int) uint32 {
	off := alignment * 4
	return uint32(sum[off+3])<<24 | uint32(sum[off+2])<<16 | uint32(sum[off+1])<<8 | uint32(sum[off])
}
