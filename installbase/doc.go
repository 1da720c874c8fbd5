// Package installbase extracts and verifies install bases.
//
// An install base is a directory of files unpacked once and then trusted by
// later runs. Extraction stages the files in a sibling directory, stamps
// every file with the distant-future modification time and moves the
// staging directory into place with a single rename, so readers never see
// a partial install. When another process wins the rename the losing copy
// is discarded and the existing install is reported.
//
// Verification walks the install base and reports every file whose
// modification time no longer carries the marker.
//
//	installer := installbase.New(local.New())
//	result, err := installer.Extract(ctx, target, files)
//	...
//	report, err := installer.Verify(ctx, target)
//	if !report.OK() {
//		// report.Tampered lists the modified files
//	}
package installbase
