// Package diagram is the application service behind the HTTP API and the
// CLI. It validates caller input, runs draw.io label extraction and feeds
// the labels to the analyzer.
package diagram
