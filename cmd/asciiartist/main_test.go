package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

// writeTestImage saves a 64x32 horizontal gradient and returns its path.
func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gradient.png")
	if err := imageutil.SaveImage(imageutil.CreateGradientImage(64, 32), path); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// artLines returns the rendered rows, i.e. everything before the timing
// summary.
func artLines(t *testing.T, stdout string) []string {
	t.Helper()
	art, _, found := strings.Cut(stdout, "\nConversion complete!")
	if !found {
		t.Fatalf("Missing timing summary in %q", stdout)
	}
	art = strings.TrimSuffix(art, "\n")
	if art == "" {
		return nil
	}
	return strings.Split(art, "\n")
}

func TestRunPlain(t *testing.T) {
	path := writeTestImage(t)
	code, stdout, stderr := runCLI(t, "-i", path, "-w", "20", "--no-color")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}

	lines := artLines(t, stdout)
	if len(lines) != 5 { // round(20 * 32/64 * 0.5)
		t.Fatalf("Expected 5 rows, got %d: %q", len(lines), stdout)
	}
	for _, line := range lines {
		if len([]rune(line)) != 20 {
			t.Errorf("Expected 20 columns, got %d in %q", len([]rune(line)), line)
		}
		if strings.Contains(line, "\x1b") {
			t.Errorf("Plain output should have no escape codes: %q", line)
		}
		if line[0] != ' ' || line[len(line)-1] != '@' {
			t.Errorf("Expected gradient from ' ' to '@', got %q", line)
		}
	}
	if !strings.Contains(stdout, "Time taken:") {
		t.Error("Expected the elapsed-time summary")
	}
	if !strings.Contains(stderr, "loading image") {
		t.Errorf("Expected the load to be logged, got %q", stderr)
	}
}

func TestRunColorFalse(t *testing.T) {
	path := writeTestImage(t)
	code, stdout, stderr := runCLI(t, "--input", path, "--width", "10", "--color=false")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	if strings.Contains(stdout, "\x1b") {
		t.Errorf("Expected no escape codes, got %q", stdout)
	}
}

func TestRunColorDegradesWithoutTerminal(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	path := writeTestImage(t)
	code, stdout, stderr := runCLI(t, "-i", path, "-w", "10")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	if strings.Contains(stdout, "\x1b") {
		t.Errorf("Output to a non-terminal should be plain, got %q", stdout)
	}
}

func TestRunAttachedShortColorValue(t *testing.T) {
	path := writeTestImage(t)
	code, stdout, stderr := runCLI(t, "-i", path, "-w", "10", "-Cfalse")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	if strings.Contains(stdout, "\x1b") {
		t.Errorf("Expected no escape codes, got %q", stdout)
	}
}

func TestRunCustomCharsetAndAspect(t *testing.T) {
	path := writeTestImage(t)
	code, stdout, stderr := runCLI(t, "-i", path, "-w", "8", "-c", "#", "-A", "1.0", "--no-color")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	lines := artLines(t, stdout)
	if len(lines) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if line != "########" {
			t.Errorf("Expected a uniform row, got %q", line)
		}
	}
}

func TestRunParallelResample(t *testing.T) {
	path := writeTestImage(t)
	code, _, stderr := runCLI(t, "-i", path, "-w", "30", "-r", "area", "-j", "4", "-v", "--no-color")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	if !strings.Contains(stderr, "level=DEBUG") {
		t.Errorf("Expected debug logs with -v, got %q", stderr)
	}
}

func TestRunHelp(t *testing.T) {
	code, stdout, _ := runCLI(t, "--help")
	if code != 0 {
		t.Fatalf("Expected exit 0 for --help, got %d", code)
	}
	for _, flag := range []string{"--input", "--width", "--charset", "--color", "--aspect-ratio-compensation"} {
		if !strings.Contains(stdout, flag) {
			t.Errorf("Help should mention %s", flag)
		}
	}
}

func TestRunErrors(t *testing.T) {
	path := writeTestImage(t)
	corrupt := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(corrupt, []byte("\x89PNG\r\n\x1a\nnope"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing input flag", []string{"-w", "10"}, "input"},
		{"missing file", []string{"-i", filepath.Join(t.TempDir(), "absent.png")}, "input not found"},
		{"corrupt image", []string{"-i", corrupt}, "unsupported or corrupt image"},
		{"zero width", []string{"-i", path, "-w", "0"}, "invalid configuration"},
		{"empty charset", []string{"-i", path, "-c", ""}, "charset"},
		{"zero aspect", []string{"-i", path, "-A", "0"}, "aspect"},
		{"negative width", []string{"-i", path, "-w", "-5"}, "Error"},
		{"bad resample", []string{"-i", path, "-r", "cubic"}, "Error"},
		{"detached color value", []string{"-i", path, "-C", "false"}, "unexpected argument \"false\""},
		{"stray argument", []string{"-i", path, "extra.png"}, "unexpected argument"},
		{"huge width", []string{"-i", path, "-w", "100000000"}, "invalid configuration"},
		{"unwritable output", []string{"-i", path, "-o", filepath.Join(t.TempDir(), "x", "y.txt")}, "output write failure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			if code == 0 {
				t.Fatalf("Expected a non-zero exit, stdout: %q", stdout)
			}
			if !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("Expected %q in stderr, got %q", tt.wantErr, stderr)
			}
			if strings.Contains(stdout, "Conversion complete") {
				t.Error("Failed runs must not print the summary")
			}
		})
	}
}

func TestRunZeroRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strip.png")
	if err := imageutil.SaveImage(imageutil.NewRGBAImage(1000, 1), path); err != nil {
		t.Fatal(err)
	}
	code, stdout, stderr := runCLI(t, "-i", path, "-w", "10")
	if code != 0 {
		t.Fatalf("Empty output is not an error, got %d: %s", code, stderr)
	}
	if lines := artLines(t, stdout); len(lines) != 0 {
		t.Errorf("Expected no rows, got %q", lines)
	}
}

func TestRunTextOutput(t *testing.T) {
	path := writeTestImage(t)
	out := filepath.Join(t.TempDir(), "art.txt")
	code, stdout, stderr := runCLI(t, "-i", path, "-w", "12", "-o", out)
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	if lines := artLines(t, stdout); len(lines) != 0 {
		t.Errorf("Art should go to the file, stdout had %q", lines)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "\x1b") {
		t.Error("Text files should be plain")
	}
	if lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"); len(lines) != 3 {
		t.Errorf("Expected 3 rows in the file, got %d", len(lines))
	}
}

func TestRunANSIFileOutput(t *testing.T) {
	path := writeTestImage(t)
	out := filepath.Join(t.TempDir(), "art.ans")
	code, _, stderr := runCLI(t, "-i", path, "-w", "12", "-o", out)
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\x1b[38;2;") {
		t.Error(".ans output should keep truecolor sequences")
	}
}

func TestRunImageOutput(t *testing.T) {
	path := writeTestImage(t)
	out := filepath.Join(t.TempDir(), "art.png")
	code, _, stderr := runCLI(t, "-i", path, "-w", "12", "-o", out)
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr)
	}
	img, _, err := imageutil.LoadImage(out)
	if err != nil {
		t.Fatalf("Snapshot should decode: %v", err)
	}
	if img.Width() != 12*7 || img.Height() != 3*13 {
		t.Errorf("Expected %dx%d, got %dx%d", 12*7, 3*13, img.Width(), img.Height())
	}
}

func TestRunImageOutputBadFont(t *testing.T) {
	path := writeTestImage(t)
	out := filepath.Join(t.TempDir(), "art.png")
	code, _, stderr := runCLI(t, "-i", path, "-o", out, "--font", filepath.Join(t.TempDir(), "none.ttf"))
	if code == 0 {
		t.Fatal("Expected failure for a missing font")
	}
	if !strings.Contains(stderr, "font") {
		t.Errorf("Expected a font error, got %q", stderr)
	}
}
