package resume

import (
	_ "embed"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

//go:embed sample/master_resume.json
var sampleResume []byte

//go:embed sample/job_description.txt
var sampleJobDescription string

// Default returns a fresh copy of the bundled sample master resume.
func Default() *types.MasterResume {
	r, err := Parse(sampleResume)
	if err != nil {
		panic("resume: bundled sample is invalid: " + err.Error())
	}
	return r
}

// SampleJobDescription returns the bundled example job posting.
func SampleJobDescription() string {
	return strings.TrimSpace(sampleJobDescription)
}
