// Package clump finds (k, L, t)-clumps: patterns of length k that occur at
// least t times inside some window of length L of a record.
//
// The first window of a record is counted from scratch with CountWindow. The
// window then slides one position at a time, and each step touches exactly
// two counters: the k-mer leaving on the left is decremented and the k-mer
// entering on the right is incremented. After every step the counts equal what
// CountWindow would compute on the current window, under the same Bounds.
//
// State never crosses a record boundary. Each call to Detector.Start gets its
// own frequency array and clump flag set, so records can be processed in
// parallel as long as they share only the (read only) kmer.Ranker.
package clump
