//go:build mage

package main

import (
	"fmt"
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when no target is specified
var Default = Test

// Test runs the full test suite.
func Test() error {
	fmt.Println("running tests...")
	return sh.RunV("go", "test", "-v", "./...")
}

// Bench runs every benchmark in the module.
func Bench() error {
	fmt.Println("running benchmarks...")
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	fmt.Println("vetting...")
	return sh.RunV("go", "vet", "./...")
}

// Build compiles the demo binary.
func Build() error {
	fmt.Println("building demo...")
	return sh.RunV("go", "build", "-o", "bin/wisp-demo", "./cmd/demo")
}

// Clean removes generated files.
func Clean() error {
	fmt.Println("cleaning...")
	return sh.Rm("bin")
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println("tidying go.mod...")
	return sh.RunV("go", "mod", "tidy")
}

// Lint runs golangci-lint if it's installed, and skips otherwise.
func Lint() error {
	fmt.Println("linting...")
	if !commandExists("golangci-lint") {
		fmt.Println("golangci-lint not found, skipping")
		return nil
	}
	return sh.RunV("golangci-lint", "run")
}

// CI runs the checks a pull request needs to pass.
func CI() error {
	mg.SerialDeps(Vet, Test)
	return nil
}

func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
