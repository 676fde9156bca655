// Package documenter drives a documentation run: it loads the module model,
// lets the primary generator run, appends module fragments, renders the
// configuration document and the application index, and relocates the
// results on request.
package documenter
