package main

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommand_PrintsVersion(t *testing.T) {
	cmd := newRootCmd()

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Photodate CLI") {
		t.Fatalf("expected output to include CLI header, got %q", output)
	}
	if !strings.Contains(output, "Version: "+version) {
		t.Fatalf("expected output to include version, got %q", output)
	}
}

func TestRunCommand_RejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd()

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"run", "in", "out", "extra"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRunCommand_ProcessesDirectory(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	writeTestJPEG(t, filepath.Join(inputDir, "IMG-20201107-WA0029.jpg"))

	cmd := newRootCmd()

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"run", inputDir, outputDir})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Processing: IMG-20201107-WA0029.jpg") {
		t.Errorf("missing processing line, got %q", output)
	}
	if !strings.Contains(output, "Update Report:") {
		t.Errorf("missing report heading, got %q", output)
	}
	if !strings.Contains(output, "Added: 1") {
		t.Errorf("missing counter line, got %q", output)
	}

	runDirs, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(runDirs) != 1 {
		t.Fatalf("expected 1 run directory, got %d", len(runDirs))
	}
}

func TestRunCommand_EmptyInput(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	cmd := newRootCmd()

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"run", inputDir, outputDir})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(out.String(), "No .jpg files found in input directory") {
		t.Errorf("missing empty-input message, got %q", out.String())
	}
	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Errorf("output directory should not be created for an empty run")
	}
}

func TestRunCommand_ReadsConfigFile(t *testing.T) {
	work := t.TempDir()
	inputDir := filepath.Join(work, "photos")
	outputDir := filepath.Join(work, "fixed")
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestJPEG(t, filepath.Join(inputDir, "IMG-20201107-WA0029.jpg"))

	configPath := filepath.Join(work, "config.toml")
	content := "input_dir = \"" + inputDir + "\"\noutput_dir = \"" + outputDir + "\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"run", "--config", configPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(out.String(), "Added: 1") {
		t.Errorf("missing counter line, got %q", out.String())
	}
	if _, err := os.Stat(outputDir); err != nil {
		t.Errorf("output directory missing: %v", err)
	}
}

func writeTestJPEG(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 64, G: 128, B: 192, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write jpeg: %v", err)
	}
}
