// Package mapio reads and writes mind map data files.
//
// # Formats
//
// Two encodings of the same document are supported, chosen by file
// extension (.json, .yaml, .yml) or explicitly with a [Format]:
//
//	{
//	  "nodes": [
//	    {"id": "root", "text": "Central Idea", "x": 400, "y": 300, "color": "#4A90E2", "width": 150, "height": 80},
//	    {"id": "node-1700000000000-a1b2c3d4e", "text": "New Node", "x": 700, "y": 300, "color": "#4A90E2", "parentId": "root"}
//	  ],
//	  "connections": [
//	    {"id": "conn-root-node-1700000000000-a1b2c3d4e", "source": "root", "target": "node-1700000000000-a1b2c3d4e"}
//	  ]
//	}
//
// The JSON form is the same document the storage package persists, so a
// data file can be produced by copying the stored blob.
//
// # Import
//
// [Read] and [Import] reject documents that cannot be loaded as a map: no
// nodes, a missing or duplicated root, or duplicate node ids. Connections
// whose endpoints are missing are kept; renderers skip them.
//
// # Export
//
// [Write] and [Export] preserve node and connection order.
package mapio
