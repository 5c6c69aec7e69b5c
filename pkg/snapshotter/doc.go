// Package snapshotter assembles hardware snapshots of the current host.
//
// # Overview
//
// The snapshotter runs every collector from pkg/collector exactly once, in a
// fixed category order, and merges their outcomes into a single Snapshot.
// Collection never aborts: a collector that fails, times out, or panics is
// recorded as a placeholder for its category and the remaining collectors
// still run.
//
// # Core Types
//
// Assembler: runs the collectors and returns a Snapshot
//
//	a := &snapshotter.Assembler{Version: "v1.0.0"}
//	snap := a.Assemble(ctx)
//
// NodeSnapshotter: assembles and serializes
//
//	type NodeSnapshotter struct {
//	    Version    string                // Recorded in metadata
//	    Factory    collector.Factory     // Collector factory (optional)
//	    Serializer serializer.Serializer // Output serializer (optional)
//	}
//
// Snapshot: header plus one report per category
//
//	type Snapshot struct {
//	    Header                 // API version, kind, metadata
//	    Reports []facts.Report // Platform, CPU, Memory, Disk, GPU, Motherboard, Driver
//	}
//
// # Usage
//
// Basic snapshot with defaults (stdout JSON):
//
//	s := &snapshotter.NodeSnapshotter{Version: "v1.0.0"}
//	if err := s.Measure(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Custom output serializer:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "snapshot.yaml")
//	defer w.(serializer.Closer).Close()
//
//	s := &snapshotter.NodeSnapshotter{Version: "v1.0.0", Serializer: w}
//
// # Snapshot Structure
//
//	kind: Snapshot
//	apiVersion: hwfacts.nvidia.com/v1alpha1
//	metadata:
//	  hostname: node-1
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v1.0.0
//	reports:
//	  - type: Platform
//	    facts:
//	      system: Linux
//	      nodeName: node-1
//	  - type: Motherboard
//	    error:
//	      category: Motherboard
//	      code: NOT_AVAILABLE
//	      message: DMI information not available
//
// # Error Handling
//
// Assemble has no error path. Collector errors are converted to
// facts.CollectorError using the code of the first errors.StructuredError in
// the chain; context deadlines map to TIMEOUT and panics to INTERNAL.
// Measure returns an error only when serialization fails.
//
// # Observability
//
//   - hwfacts_snapshot_collection_duration_seconds: time to assemble a snapshot
//   - hwfacts_snapshot_collection_total{status}: complete or degraded
//   - hwfacts_snapshot_collector_duration_seconds{collector}: per-collector timing
//   - hwfacts_snapshot_collector_errors_total{collector,code}: placeholders
package snapshotter
