package generator

// Record is the outcome of one node visit.
type Record struct {
	Path   string // base-relative node path
	Action Action
	Err    error // set when Action is ActionFailed
}

// Report is the ordered record of outcomes for a complete run. It is
// mutated only by the walker while the run is in flight; consumers
// read it afterwards to print a summary and pick the exit status.
type Report struct {
	records []Record
}

func (r *Report) add(path string, action Action) {
	r.records = append(r.records, Record{Path: path, Action: action})
}

func (r *Report) fail(path string, err error) {
	r.records = append(r.records, Record{Path: path, Action: ActionFailed, Err: err})
}

// Records returns the outcomes in visit order. The returned slice is
// shared; callers must treat it as read-only.
func (r *Report) Records() []Record {
	return r.records
}

// Len returns the number of visited nodes.
func (r *Report) Len() int {
	return len(r.records)
}

// Failed counts nodes that ended in a failure.
func (r *Report) Failed() int {
	n := 0
	for _, rec := range r.records {
		if rec.Action == ActionFailed {
			n++
		}
	}
	return n
}
