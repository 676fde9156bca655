// Package metrics records run and stage metrics for documentation generation.
//
// Components receive a Recorder through injection and default to NoopRecorder,
// so no call site needs a nil check. PrometheusRecorder registers its
// collectors on a caller-supplied registry; since a generation run is a short
// batch process, the registry is exported with WriteTextfile for a node
// exporter textfile collector rather than served over HTTP.
package metrics
