//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds and starts the game.
func (Run) Game() error {
	mg.Deps(Build.Binary)
	_, err := executeCmd("./"+binDir+"/"+binName, withArgs("play"), withStream())
	return err
}

// Builds and runs the library smoke test.
func (Run) Check() error {
	mg.Deps(Build.Binary)
	_, err := executeCmd("./"+binDir+"/"+binName, withArgs("check"), withStream())
	return err
}
