// Package output owns the lifecycle of generated artifacts inside the output
// directory: resolving where that directory lives, recreating well-known
// files, appending fragments to per-module files and copying artifacts out.
//
// The output directory is <buildRoot>/<subdir>. The build root is decided once
// when the Manager is constructed, either from an explicit value or by probing
// the working directory for a build-tool marker file, and every path resolved
// afterwards uses that decision.
package output
