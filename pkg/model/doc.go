// Package model defines the per-request view data consumed by elements. The
// controller layer assembles a loosely typed Data map; elements read it through
// presence-checking accessors and decode the few structured payloads they need
// (classifiers, crawl mixes, machines, crawl status, advertisements, query
// statistics) into the typed records declared here. Nothing in this package
// outlives a single render call.
package model
