// Package comparison exposes the comparison engine over HTTP.
//
// Every endpoint takes the pairs and lookup tables as multipart uploads
// ("pairs", "lookup"), as objects in the storage bucket ("pairs_object",
// "lookup_object"), or for the lookup side as a database table
// ("lookup_table"). Unreadable files are logged and read as empty tables,
// which gives an empty result.
//
// Builds are described by the "request" form field, a JSON compare.Request:
//
//	{
//	    "roles": {"id1": "query", "id2": "subject", "lookup_id": "id", "name": "name", "meta": "tags"},
//	    "compare": ["tags", {"column": "size", "type": "numeric"}],
//	    "display": ["ID_1", "ID_2", "Name_1", "Name_2"]
//	}
//
// # HTTP Endpoints
//
//   - POST /comparison/columns : typed columns, suggested roles and display options.
//   - POST /comparison/build : merged rows, display schema and highlight rules.
//   - POST /comparison/detail : drill-down of form "row", or of a posted "values" object.
//   - POST /comparison/export : merged_comparison.xlsx, ?store=true archives it.
//
// Missing roles, absent columns, rejected duplicates and out-of-range rows
// answer 400.
package comparison
