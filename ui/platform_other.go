//go:build !darwin

package ui

func getPlatform() platform {
	return noopPlatform{}
}
