// Package report holds the report drivers. Each driver configures the
// traversal engine for one report, attaches the report legend and returns the
// finished documents; Run hands them to the renderers only when every
// document was built without error.
package report
