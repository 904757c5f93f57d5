// Package subtitles turns a timing-accurate ASR transcript and a
// text-accurate canonical script into timed subtitle cues.
//
// The pipeline aligns canonical words onto ASR token timings, groups the
// aligned words into punctuation-aware cues, and serializes them as SRT.
// Layered fallbacks guarantee a usable cue list even when the transcript is
// partial or absent: word alignment falls back to interpolation, remote
// segmentation falls back to a deterministic even split, and any unclassified
// failure collapses to a single placeholder cue. Nothing in this package is
// fatal to the caller.
package subtitles
