// Package domain holds the core model of drillbox: drill metadata, run
// reports, suites, assertion and extraction specs, and the error taxonomy.
// It depends only on the standard library so every other layer can import it.
package domain
