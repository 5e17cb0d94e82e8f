// example_test.go: runnable documentation examples.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package mneme_test

import (
	"fmt"

	"github.com/agilira/mneme"
)

func ExampleCache_basic() {
	cache, err := mneme.New(mneme.Config{Capacity: 2})
	if err != nil {
		panic(err)
	}
	defer cache.Close()

	cache.Put([]byte("a"), []byte("1"))
	cache.Put([]byte("b"), []byte("2"))
	cache.Put([]byte("c"), []byte("3")) // evicts "a"

	if _, found := cache.Get([]byte("a")); found {
		fmt.Println("a found")
	} else {
		fmt.Println("a evicted")
	}

	if v, found := cache.Get([]byte("c")); found {
		fmt.Printf("c = %s\n", v)
	}

	// Output:
	// a evicted
	// c = 3
}

func ExampleCache_GetOrLoad() {
	cache, err := mneme.New(mneme.Config{Capacity: 10})
	if err != nil {
		panic(err)
	}
	defer cache.Close()

	loads := 0
	loader := func() ([]byte, error) {
		loads++
		return []byte("expensive-result"), nil
	}

	v1, _ := cache.GetOrLoad([]byte("key"), loader)
	v2, _ := cache.GetOrLoad([]byte("key"), loader)

	fmt.Printf("%s %s loads=%d\n", v1, v2, loads)

	// Output:
	// expensive-result expensive-result loads=1
}

func ExampleCache_Metrics() {
	cache, err := mneme.New(mneme.Config{Capacity: 10})
	if err != nil {
		panic(err)
	}
	defer cache.Close()

	cache.Put([]byte("k1"), []byte("v1"))
	cache.Put([]byte("k2"), []byte("v2"))
	cache.Get([]byte("k1"))
	cache.Get([]byte("missing"))

	m := cache.Metrics()
	fmt.Printf("hits=%d misses=%d\n", m.Hits, m.Misses)

	// Output:
	// hits=1 misses=1
}
