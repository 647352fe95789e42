// Package metrics records per-run statistics (document sizes, run outcome and
// duration) in a private Prometheus registry and writes them in the text
// exposition format, suitable for the node_exporter textfile collector.
package metrics
