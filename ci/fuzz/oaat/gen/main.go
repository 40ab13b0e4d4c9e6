package main

import (
	"github.com/Pallinder/go-randomdata"
	"github.com/dvyukov/go-fuzz/gen"
)

var zdata = []string{
	"",
	"VOD.L",
	"hello",
	"plane",
	"A",
	"a",
	"BT.L",
	"ARM.L",
	"a\x00b",
	"\xff\xff\xff\xff\xff\xff\xff\xff",
}

const randomSeeds = 32

func main() {
	for _, data := range zdata {
		gen.Emit([]byte(data), nil, true)
	}
	for i := 0; i < randomSeeds; i++ {
		gen.Emit([]byte(randomdata.SillyName()), nil, true)
		gen.Emit([]byte(randomdata.Email()), nil, true)
	}
}
