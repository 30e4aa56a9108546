//go:build !(js && wasm)

package main

import (
	"os"

	"github.com/plus3/tetoris/platform"
)

func newPlatform() platform.Service {
	return offlinePlatform()
}

func offlinePlatform() platform.Service {
	return platform.Offline{Name: os.Getenv("USER")}
}
