// Package datastore keeps st7735-setup's run history on the filesystem.
//
// The history is a single YAML document holding the most recent runs, newest
// last. It is informational only: the setup procedure never reads it to
// decide what to do, so a lost or corrupt history changes nothing but the
// output of "st7735-setup status".
package datastore
