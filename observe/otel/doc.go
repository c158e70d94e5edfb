// Package otel reserves the plugin point for an OpenTelemetry-backed
// observer. Until that exists it ships Nop, a do-nothing implementation of
// ctxtree.Observer that also serves as an embeddable base for observers
// that only care about a subset of the hooks.
package otel
