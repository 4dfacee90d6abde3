// Package core provides a small, stable facade over the detection engine for
// every front end: CLI, CI action, editor extension, and embedders. It
// deliberately re-exports a narrow API surface so integrations depend on one
// import path instead of internal packages.
//
// Example:
//
//	res := core.ScanFreeText(buf)
//	if res != nil {
//		fmt.Println(res.Grade.Letter, res.Counts.Critical)
//	}
package core
