package httputil_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wordlattice/lattice/pkg/httputil"
)

func ExampleCache() {
	// Create a cache with 24-hour TTL in a temp directory
	dir := filepath.Join(os.TempDir(), "lattice-example")
	cache, err := httputil.NewCache(dir, 24*time.Hour)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Store a downloaded word list
	if err := cache.Set("words:en", []byte("cat\ncar\n")); err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Retrieve it
	var body []byte
	if ok, err := cache.Get("words:en", &body); ok && err == nil {
		fmt.Printf("%s", body)
	}

	// Clean up
	os.RemoveAll(dir)
	// Output:
	// cat
	// car
}

func ExampleCache_miss() {
	dir := filepath.Join(os.TempDir(), "lattice-example-miss")
	cache, _ := httputil.NewCache(dir, time.Hour)
	defer os.RemoveAll(dir)

	// Try to get a non-existent key
	var result string
	ok, err := cache.Get("nonexistent", &result)
	fmt.Println("Found:", ok)
	fmt.Println("Error:", err)
	// Output:
	// Found: false
	// Error: <nil>
}
