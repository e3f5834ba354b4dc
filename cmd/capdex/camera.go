package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/poiesic/capdex/capture"
)

// fileCamera "captures" a photo that already exists on disk.
type fileCamera struct {
	path string
}

var _ capture.Camera = fileCamera{}

func (f fileCamera) Capture(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(f.path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s is not a regular file", abs)
	}
	return abs, nil
}

// promptPicker lists options on out and reads a choice from in.
// A choice is an option number or its label; an empty line dismisses.
type promptPicker struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ capture.Picker = (*promptPicker)(nil)

func newPromptPicker(in io.Reader, out io.Writer) *promptPicker {
	return &promptPicker{in: bufio.NewScanner(in), out: out}
}

func (p *promptPicker) Pick(ctx context.Context, options []string) (string, bool, error) {
	for i, opt := range options {
		fmt.Fprintf(p.out, "%3d) %s\n", i+1, opt)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		fmt.Fprint(p.out, "Choice (empty to skip): ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", false, err
			}
			return "", false, nil
		}

		answer := strings.TrimSpace(p.in.Text())
		if answer == "" {
			return "", false, nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], true, nil
		}
		for _, opt := range options {
			if strings.EqualFold(opt, answer) {
				return opt, true, nil
			}
		}
		fmt.Fprintf(p.out, "No such option: %s\n", answer)
	}
}
