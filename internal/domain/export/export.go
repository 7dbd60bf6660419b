package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trainbook/internal/domain/training"
)

// Version is the literal format tag written to every export envelope.
const Version = "1.0"

// Domain errors.
var (
	ErrMalformedDocument = errors.New("import document is not valid JSON")
	ErrMissingTrainings  = errors.New("import document has no trainings array")
)

// Document is the versioned envelope exchanged by export and import.
// The trainings collection is carried verbatim, with nested participants.
type Document struct {
	ExportDate time.Time           `json:"exportDate"`
	Version    string              `json:"version"`
	Trainings  []training.Training `json:"trainings"`
}

// NewDocument wraps a trainings snapshot in an envelope stamped now.
// PRE: trainings is the full store snapshot
// POST: Returns a Document with ExportDate set and Version = "1.0"
func NewDocument(trainings []training.Training, now time.Time) Document {
	if trainings == nil {
		trainings = []training.Training{}
	}
	return Document{
		ExportDate: now,
		Version:    Version,
		Trainings:  trainings,
	}
}

// Marshal renders the envelope as indented JSON for file download.
// POST: Returns the document bytes or a marshalling error
func (d Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// ParseDocument is the import validation gate. It accepts any syntactically
// valid JSON object whose "trainings" field is an array; training records
// are decoded as-is with no field-by-field validation. The envelope's own
// exportDate and version are discarded on import.
// PRE: data is the raw import file content
// POST: Returns the decoded trainings or an error; never partially decodes
func ParseDocument(data []byte) (Document, error) {
	var probe struct {
		Version   string          `json:"version"`
		Trainings json.RawMessage `json:"trainings"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	raw := bytes.TrimSpace(probe.Trainings)
	if len(raw) == 0 || raw[0] != '[' {
		return Document{}, ErrMissingTrainings
	}

	var trainings []training.Training
	if err := json.Unmarshal(raw, &trainings); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if trainings == nil {
		trainings = []training.Training{}
	}

	return Document{Version: probe.Version, Trainings: trainings}, nil
}
