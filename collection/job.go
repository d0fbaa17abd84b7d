package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// InputFileName is the job descriptor expected in every collection
// directory; OutputFileName is written next to the collection's name under
// the output directory.
const (
	InputFileName  = "challenge1b_input.json"
	OutputFileName = "challenge1b_output.json"
	PDFDirName     = "PDFs"
)

// DocumentRef is one entry of the job's ordered document list. Title doubles
// as the document summary used for secondary keyword mining.
type DocumentRef struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
}

type Persona struct {
	Role string `json:"role"`
}

type JobToBeDone struct {
	Task string `json:"task"`
}

// Job is the immutable per-collection job descriptor.
type Job struct {
	ChallengeInfo map[string]interface{} `json:"challenge_info"`
	Documents     []DocumentRef          `json:"documents"`
	Persona       Persona                `json:"persona"`
	JobToBeDone   JobToBeDone            `json:"job_to_be_done"`
}

var ErrInvalidJob = errors.New("invalid job descriptor")

// LoadJob reads and validates a collection's job descriptor.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job descriptor: %w", err)
	}

	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}

	if job.Persona.Role == "" {
		return nil, fmt.Errorf("%w: missing persona role", ErrInvalidJob)
	}
	if job.JobToBeDone.Task == "" {
		return nil, fmt.Errorf("%w: missing task", ErrInvalidJob)
	}
	if len(job.Documents) == 0 {
		return nil, fmt.Errorf("%w: empty document list", ErrInvalidJob)
	}

	return &job, nil
}
