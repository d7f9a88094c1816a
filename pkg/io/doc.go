// Package io reads and writes graph instances as edge-list text files and
// exports them to Graphviz.
//
// # Edge-list Format
//
// One instance per file, decimal integers separated by single spaces, one
// record per line, every line newline-terminated:
//
//	<V> <E>
//	<u_1> <v_1> <w_1>
//	...
//	<u_E> <v_E> <w_E>
//	<source> <destination>
//
// Edges appear in the order of the graph's edge list, which for generated
// graphs is the generation order.
//
// # Export
//
// Use [ExportEdgeList] to write a file, or [WriteEdgeList] to write to any
// io.Writer:
//
//	w, err := io.ExportEdgeList(graph.NewInstance(g), "esparso_1.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(w.Bytes, w.SHA256)
//
// Export failures carry the IO_ERROR code and never leave a partial file
// behind.
//
// # Import
//
// Use [ImportEdgeList] to read a file, or [ReadEdgeList] to read from any
// io.Reader. Reading is token based, like the consuming shortest-path
// programs, and checks the edge count and endpoint ranges. Export followed by
// import returns the same vertex count, edge list (in order) and query pair.
//
// # Graphviz
//
// [ToDOT] produces a DOT digraph for small instances and [RenderSVG] renders
// it with go-graphviz. Large instances are refused; see [DefaultDOTMaxEdges].
package io
