// Package tracing integrates observability back-ends with the time
// integrator's DAG executor to provide distributed tracing information. All
// instrumentation is kept in this one package; the executor and the root
// controller call it on every stage and task, and its spans are no-ops
// until Init or InitWithExporter installs a trace provider.
package tracing
