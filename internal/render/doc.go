// Package render turns finished diagram graphs into artifacts: DOT text,
// Graphviz images, YAML snapshots, or nodes and relationships in Neo4j.
//
// Renderers only ever receive complete graphs; a report whose traversal
// failed produces no Document.
package render
