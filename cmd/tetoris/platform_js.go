//go:build js && wasm

package main

import "github.com/plus3/tetoris/platform"

func newPlatform() platform.Service {
	return platform.NewLIFF()
}

func offlinePlatform() platform.Service {
	return platform.Offline{}
}
