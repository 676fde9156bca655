// Package diagram produces the primary artifacts that exist before the
// documentation engine writes its own files: the component diagram and the
// API schema. The engine treats their content as opaque and only references
// them by name.
package diagram
