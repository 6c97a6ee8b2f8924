// Package render builds page trees from content documents.
//
// A skeleton registry maps names to node factories. Rendering a list clones
// the named skeleton once per item, fills its data-slot descendants, stamps
// each instance with its position, and attaches it to a container node.
// Containers that don't exist are skipped silently, matching the tree's
// nil no-op contract.
package render
