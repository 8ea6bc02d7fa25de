//go:build integration

package test_test

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var testBinary string

func TestMain(m *testing.M) {
	testBinary = os.Getenv("WAVICON_TEST_BIN")
	if testBinary == "" {
		fmt.Fprintln(os.Stderr, "WAVICON_TEST_BIN not set; build wavicon and point the variable at it")
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// runWavicon runs the binary inside a fresh working directory and returns it.
func runWavicon(t *testing.T, args ...string) (workDir, stdout string) {
	t.Helper()
	workDir = t.TempDir()

	cmd := exec.Command(testBinary, args...)
	cmd.Dir = workDir
	cmd.Env = os.Environ()

	var out, errOut bytes.Buffer
	cmd.Stdout, cmd.Stderr = &out, &errOut
	if err := cmd.Run(); err != nil {
		t.Fatalf("wavicon %v exited with error: %v\nstderr: %s", args, err, errOut.String())
	}
	return workDir, out.String()
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return data
}

func TestDefaultRun(t *testing.T) {
	dir, stdout := runWavicon(t)

	if !strings.Contains(stdout, "Wave icons generated in the 'wave_icons' folder.") {
		t.Errorf("missing wave confirmation in %q", stdout)
	}
	if !strings.Contains(stdout, "Saved coral.png") {
		t.Errorf("missing logo confirmation in %q", stdout)
	}

	for f := 0; f < 8; f++ {
		data := readFile(t, filepath.Join(dir, "wave_icons", fmt.Sprintf("wave_%d.png", f)))
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("frame %d: %v", f, err)
		}
		if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
			t.Errorf("frame %d bounds = %v", f, b)
		}
	}
}

func TestOutputIsDeterministic(t *testing.T) {
	first, _ := runWavicon(t)
	second, _ := runWavicon(t)

	files := []string{"coral.png"}
	for f := 0; f < 8; f++ {
		files = append(files, filepath.Join("wave_icons", fmt.Sprintf("wave_%d.png", f)))
	}
	for _, name := range files {
		a := readFile(t, filepath.Join(first, name))
		b := readFile(t, filepath.Join(second, name))
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestLogPath(t *testing.T) {
	logDir := t.TempDir()
	_, _ = runWavicon(t, "logo", "-logpath", logDir)

	diag := string(readFile(t, filepath.Join(logDir, "wavicon_log.txt")))
	for _, want := range []string{"run_start", "file_written", "run_end"} {
		if !strings.Contains(diag, want) {
			t.Errorf("expected %s in diagnostics, got:\n%s", want, diag)
		}
	}
}

func TestInvalidParameterFails(t *testing.T) {
	cmd := exec.Command(testBinary, "wave", "-wavelength", "0")
	cmd.Dir = t.TempDir()
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected failure, output: %s", out)
	}
	if _, statErr := os.Stat(filepath.Join(cmd.Dir, "wave_icons")); !os.IsNotExist(statErr) {
		t.Error("output directory created despite invalid parameters")
	}
}
