//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "vocabmt"

// Default target to run when none is specified
var Default = Build

// Build compiles the vocabmt binary into ./bin
func Build() error {
	return sh.RunV("go", "build", "-o", filepath.Join("bin", binary), "./cmd/vocabmt")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Install copies the binary to ~/go/bin
func Install() error {
	mg.Deps(Build)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dest := filepath.Join(home, "go", "bin", binary)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	return sh.Copy(dest, filepath.Join("bin", binary))
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
