// package models defines the data model for the sportsdeck client.
//
// Remote payloads (events, teams, auth profiles) are duck-typed JSON with
// optional fields; they are modeled as structs with explicit zero-value
// semantics and validated at the boundary rather than accessed unchecked.
package models
