//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const (
	binDir  = "bin"
	binName = "spriteloop"
	mainPkg = "./cmd/spriteloop"
)

type Build mg.Namespace

// Compiles the spriteloop binary into bin/.
func (Build) Binary() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(binDir, binName)
	if _, err := executeCmd("go", withArgs("build", "-o", out, mainPkg), withStream()); err != nil {
		return err
	}
	fmt.Println("Built", out)
	return nil
}

// Runs go mod tidy and go vet.
func (Build) Tidy() error {
	if _, err := executeCmd("go", withArgs("mod", "tidy")); err != nil {
		return fmt.Errorf("failed to run go mod tidy: %w", err)
	}
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return fmt.Errorf("failed to run go vet: %w", err)
	}
	return nil
}

// Removes build output.
func Clean() error {
	return os.RemoveAll(binDir)
}
