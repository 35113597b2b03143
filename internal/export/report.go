package export

import "github.com/google/uuid"

// Job identifies one export run across its generated files (PDF, labels,
// Excel, DXF), for callers that want to correlate them in logs or a
// download manifest. It has no bearing on the optimization result itself,
// which stays free of generated identifiers so two calls with identical
// inputs remain byte-for-byte comparable.
type Job struct {
	ID string
}

// NewJob mints a fresh job identifier.
func NewJob() Job {
	return Job{ID: uuid.New().String()}
}
