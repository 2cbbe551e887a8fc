// Package setup implements the st7735-python setup procedure.
//
// The procedure is a fixed, linear sequence of steps:
//
//	preflight             (opt-in) verify git/pip are on PATH and the root is writable
//	ensure-root           create the projects root if absent
//	remove-stale          delete any previous checkout
//	clone                 git clone the repository into the projects root
//	install-dependencies  pip install -r <manifest>, run inside the checkout
//	install-package       pip install <target>, run inside the checkout
//	write-samples         (opt-in) render demo scripts next to the checkout
//	hint                  tell the user how to run an upstream example
//
// Execution is fail-fast: the first failing step stops the run. Nothing is
// retried or rolled back, and the remaining steps are reported as skipped.
// Running the procedure twice converges on the same end state because
// remove-stale discards whatever the previous run left behind.
package setup
