// Package types defines the survey, activity, and account entities, the
// stage progression rules, the RecordStore interface, and the standard
// error values for the Platboard review tracker.
package types
