package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// perf-hello prints the environment it was given.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%[1]s=%%s\n", os.Getenv("%[1]s"))
	fmt.Printf("%[2]s=%%s\n", os.Getenv("%[2]s"))
	fmt.Printf("%[3]s=%%s\n", os.Getenv("%[3]s"))
	fmt.Printf("%[4]s=%%s\n", os.Getenv("%[4]s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvDataset, EnvDistinguished, EnvBaseline, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "perf-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write perf-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile perf-hello: %v", err)
	}

	perfBinaryPath := filepath.Join(tempDir, "perf")
	build = exec.Command("go", "build", "-o", perfBinaryPath, "../perf")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile perf binary: %v", err)
	}

	expectedDataset := filepath.Join(tempDir, "returns.json")
	args := []string{
		"-dataset", expectedDataset,
		"-distinguished", "gold",
		"-baseline", "bonds",
		"-v",
		"hello", // the extension subcommand
		"world",
	}

	perfCmd := exec.Command(perfBinaryPath, args...)
	perfCmd.Dir = tempDir
	perfCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	perfCmd.Stdout = &stdout
	perfCmd.Stderr = &stderr

	if err := perfCmd.Run(); err != nil {
		t.Fatalf("perf command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	expectedLines := []string{
		EnvDataset + "=" + expectedDataset,
		EnvDistinguished + "=gold",
		EnvBaseline + "=bonds",
		EnvVerbose + "=" + strconv.FormatBool(true),
		"args=[world]",
	}
	for _, want := range expectedLines {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}

	if stderr.Len() > 0 {
		t.Logf("Stderr from perf command: %s", stderr.String())
	}
}

func TestExtensionMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("does-not-exist", nil); found || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", found, code)
	}
}
