// Package spanvec provides run-length encoded property vectors for text
// formatting and table layout.
//
// # Overview
//
// A [Vector] stores a value that is constant over runs of positions along a
// conceptually infinite axis starting at 0. Formatting attributes over the
// characters of a paragraph, bidi levels, scripts or per-column state of a
// table are typical payloads. Positions past the last explicit run read as
// the vector's default value.
//
//	v := spanvec.New(' ')
//	v.Set(0, 5, 'a') // [(a,5)]
//	v.Set(2, 2, 'b') // [(a,2) (b,2) (a,1)]
//	v.Set(2, 2, 'a') // [(a,5)]
//
// The encoding is always maximal: Set merges the written range with equal
// neighbours, so no two adjacent runs hold equal values.
//
// # Riders
//
// A [Rider] is a read-only cursor that caches the run it last visited.
// Moving forward costs O(runs crossed); moving backward rescans from the
// first run. Layout code walks a paragraph front to back, so this is
// amortized O(1) per step.
//
//	r := spanvec.NewRider(v)
//	for pos := 0; pos < n; {
//	    r.At(pos)
//	    length := min(r.Length(), n-pos) // Length is Infinite past the last run
//	    emit(pos, length, r.CurrentValue())
//	    pos += length
//	}
//
// # Concurrency
//
// Vectors and riders are not synchronized. Several riders may read one
// vector as long as no Set runs at the same time.
//
// # Sub-packages
//
//   - table: row-span tracking for table structure validation and column widths
//   - text: attributed paragraphs, bidi/script analysis, uniform runs and line wrapping
package spanvec
