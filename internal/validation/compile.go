package validation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const pdflatexBinary = "pdflatex"

// CompilerAvailable reports whether pdflatex can be found in PATH.
func CompilerAvailable() bool {
	_, err := exec.LookPath(pdflatexBinary)
	return err == nil
}

// CompileLaTeX runs pdflatex on texPath, writing output into workDir, and
// returns the path of the produced PDF.
func CompileLaTeX(ctx context.Context, texPath, workDir string) (string, error) {
	if _, err := exec.LookPath(pdflatexBinary); err != nil {
		return "", ErrCompilerNotFound
	}
	if _, err := os.Stat(texPath); err != nil {
		return "", &Error{Op: "read", Path: texPath, Cause: err}
	}

	absTex, err := filepath.Abs(texPath)
	if err != nil {
		return "", &Error{Op: "resolve", Path: texPath, Cause: err}
	}
	absWork, err := filepath.Abs(workDir)
	if err != nil {
		return "", &Error{Op: "resolve", Path: workDir, Cause: err}
	}
	if err := os.MkdirAll(absWork, 0755); err != nil {
		return "", &Error{Op: "create work directory", Path: absWork, Cause: err}
	}

	cmd := exec.CommandContext(ctx, pdflatexBinary,
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory="+absWork,
		absTex,
	)
	cmd.Dir = absWork

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &CompilationError{
			Message:   "pdflatex exited with an error",
			LogOutput: tailLines(output.String(), 40),
			Cause:     err,
		}
	}

	base := strings.TrimSuffix(filepath.Base(absTex), filepath.Ext(absTex))
	pdfPath := filepath.Join(absWork, base+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &CompilationError{
			Message:   "pdflatex did not produce a PDF",
			LogOutput: tailLines(output.String(), 40),
			Cause:     err,
		}
	}
	return pdfPath, nil
}

// CompileLaTeXSource writes latex to a temporary directory, compiles it and
// returns the page count of the result.
func CompileLaTeXSource(ctx context.Context, latex string) (int, error) {
	dir, err := os.MkdirTemp("", "resume-tailor-latex-*")
	if err != nil {
		return 0, &Error{Op: "create temporary directory", Cause: err}
	}
	defer os.RemoveAll(dir)

	texPath := filepath.Join(dir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(latex), 0644); err != nil {
		return 0, &Error{Op: "write", Path: texPath, Cause: err}
	}

	pdfPath, err := CompileLaTeX(ctx, texPath, dir)
	if err != nil {
		return 0, err
	}
	return CountPDFPages(pdfPath)
}

// CountPDFPages returns the number of pages in the PDF at path.
func CountPDFPages(path string) (pages int, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, &Error{Op: "read PDF", Path: path, Cause: fmt.Errorf("%v", r)}
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, &Error{Op: "open PDF", Path: path, Cause: err}
	}
	defer f.Close()

	return r.NumPage(), nil
}

// IsCompilerMissing reports whether err means pdflatex is unavailable.
func IsCompilerMissing(err error) bool {
	return errors.Is(err, ErrCompilerNotFound)
}

func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
