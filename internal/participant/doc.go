// Package participant defines the hackathon participant model and the
// roster loader.
//
// A roster is a JSON array of participant records. Load reads and
// validates the whole file up front: a single malformed or duplicate
// record aborts the load, so the matching engine only ever sees a
// clean roster.
package participant
