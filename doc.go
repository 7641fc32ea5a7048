// Package footprint estimates the nature footprint of financial portfolios.
//
// It propagates sector level environmental data through an input-output
// model:
//   - Sector-Intensity Index: Table and Universe key per-unit-output
//     pressures (MSA-loss from greenhouse gases, land use...) or ecosystem
//     service dependencies by SectorKey, a (country, sector) pair.
//   - Propagation Engine: Propagate turns direct intensities into total
//     (direct and upstream supply chain) intensities with a Leontief inverse.
//   - Exposure Allocator: Allocate weights total intensities by the amount of
//     every exposure (loan) of a loan book.
//   - Portfolio Aggregator: Aggregate sums impacts per reporting entity.
//   - Dependency Scorer: ScoreDependencies combines direct and supplier
//     weighted dependencies with a saturating rule.
//
// All computations are single-shot, in-memory and deterministic: the same
// inputs always give bit identical outputs. Inputs and outputs can be read
// and written as JSONL with the Decode and Encode functions.
//
// This package serves as the foundational logic of the `nfp` command-line
// tool.
package footprint
