// Package codec turns bridged values into flat text records and back.
//
// A record is a JSON object: structs are written as their exported fields
// and accessor pairs, any other value is wrapped as {"$value": ...}, and
// host-owned objects are written as {"$hash": "<identity>"} and resolved
// again on decode. Collections are stored as records written back to back
// and cut apart again with Split.
package codec
