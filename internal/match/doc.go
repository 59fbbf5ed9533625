// Package match implements the team-formation engine.
//
// The engine consumes a loaded roster and a Config and produces a
// partition of the roster into teams, each carrying a structured
// rationale for why its members were co-assigned.
//
// # Pipeline
//
// The pipeline runs in fixed stages:
//
//  1. The objective splitter routes every participant into exactly one
//     of two cohorts, competitive or social, by a case-insensitive
//     keyword match against the objective text.
//  2. The availability filter removes competitive participants who do
//     not satisfy enough of the required time slots. The social cohort
//     is never filtered.
//  3. One greedy grouping strategy runs per cohort. Both share a
//     shape: pop a seed from the front of the pool, pull in the seed's
//     declared friends, extend with compatible candidates, then cap
//     the team. Overflow beyond the cap returns to the front of the
//     pool and seeds the next team.
//  4. Availability-filtered participants come back as singleton teams
//     so nobody is ever dropped from the output.
//
// Every stage is deterministic for a fixed roster order: no
// randomness, no timestamps. The multiset of all output team members
// always equals the input roster.
package match
