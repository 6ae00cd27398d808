// internal/domain/imagesync/intent.go
package imagesync

// Upload is one pending image addition: raw bytes plus the object name the
// key is derived from.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

// OpKind distinguishes sync intents in batch results.
type OpKind string

const (
	OpUpload OpKind = "upload"
	OpDelete OpKind = "delete"
)

// OpResult is the outcome of one intent. Err is nil on success.
type OpResult struct {
	Kind OpKind
	Name string
	Err  error
}

// BatchResult collects per-intent outcomes of a sync pass. Individual
// failures never abort the batch; callers inspect Failed() when they care.
type BatchResult struct {
	Results []OpResult
}

// Failed returns the subset of results that carry an error.
func (b BatchResult) Failed() []OpResult {
	var out []OpResult
	for _, r := range b.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// OK reports whether every intent succeeded.
func (b BatchResult) OK() bool {
	return len(b.Failed()) == 0
}
