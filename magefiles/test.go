//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests. The SDL backend package needs the native libraries at
// link time, the rest of the tree does not.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "./internal/..."), withStream())
	return err
}

// Runs the unit tests with the race detector.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./internal/..."), withStream())
	return err
}

// Writes coverage to coverage.out.
func (Test) Cover() error {
	_, err := executeCmd("go", withArgs("test", "-coverprofile=coverage.out", "./internal/..."), withStream())
	return err
}
