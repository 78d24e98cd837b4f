// Package diagnostic collects the problems found while generating
// specializations.
//
// A failing template does not stop the run; its errors are recorded here and
// turned into a single error once every template has been processed.
package diagnostic
