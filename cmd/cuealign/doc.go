// Command cuealign aligns canonical scripts with ASR transcript timing and
// exports the result as SRT subtitle files.
package main
