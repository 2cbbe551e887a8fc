// Package filesystem provides the filesystem seam used by the setup procedure.
//
// The procedure only needs a handful of operations (stat, mkdir, recursive
// removal, file writes), so the FS interface is small and the OS
// implementation is a thin pass-through. Tests can substitute an
// implementation that records calls or injects failures.
package filesystem
