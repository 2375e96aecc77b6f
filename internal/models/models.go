package models

import "time"

// Result is one settled source: either the extracted value or its fallback.
type Result struct {
	Slot     int
	Label    string
	Value    string
	Fallback bool
	Err      error // why the fallback was used; nil on success
	Elapsed  time.Duration
}

// Status is a short word describing how the source settled.
func (r Result) Status() string {
	if r.Fallback {
		return "fallback"
	}
	return "ok"
}
