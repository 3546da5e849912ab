// Package numflow is a small toolkit for numeric data pipelines: typed
// storage, dense matrices, push-based streams and CSV/file plumbing.
//
// 🚀 What is numflow?
//
//	A pure-Go library that brings together:
//		• Typed storage: Uint8, Int32 and Float32 buffers with wraparound writes
//		• Matrices: O(1) transpose, row/column growth, concat, block averages
//		  and per-column statistics
//		• Streams: FIFO dispatch with a concurrency cap and drain-before-end
//		• Numeric streams: running sum, block and moving averages, mean
//		• CSV and file helpers: memory-mapped line reading, schema-checked
//		  JSON/YAML documents
//
// Under the hood, everything is organized under these subpackages:
//
//	buffer/ — Kind-tagged numeric storage
//	matrix/ — Matrix view over a buffer, statistics, gonum interop
//	stream/ — Stream[T], operators and Numeric aggregates
//	csv/    — numeric CSV loaders (stream, buffer, matrix) and writer
//	files/  — folders, listings, mmap line reader, JSON/YAML documents
//	text/   — {{key}} template interpolation
//
// Quick example:
//
//	rows := csv.LoadStream("data/signal.csv", csv.WithSkipFirst())
//	col := stream.Map(rows, func(r []float64) float64 { return r[0] })
//	avg, err := stream.NewNumeric(col).BlockAverage(10).Collect(ctx)
//
// See examples/csvstat for a complete program.
package numflow
