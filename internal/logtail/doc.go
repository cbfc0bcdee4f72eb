// Package logtail opens the raw log input for the filter.
//
// # Overview
//
// Input comes from one of three places, chosen by Open:
//
//  1. A file, when Options.File is set
//  2. Standard input, when it is redirected (not a terminal)
//  3. A new `adb logcat -v threadtime [-s TAG ...]` process otherwise
//
// Whatever the source, Options.TeePath receives an exact copy of the raw bytes
// as they are read, the same way `adb logcat | tee FILE` would.
//
// # Reading the end of a file
//
// Read extracts the last maxLines from a file with a ring buffer, so a large
// capture is scanned once using O(maxLines) memory:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line in file:
//	   - Store line at current index
//	   - Increment index (wrapping at maxLines)
//	   - Track total lines seen
//	3. If total < maxLines, return the first 'count' entries
//	4. Otherwise return the buffer starting from the current index
//
// Open uses it for Options.Last and hands the lines back newline terminated.
//
// # The adb subprocess
//
// The process is bound to the context given to Open and its stderr is passed
// through so "no devices/emulators found" reaches the user. Source.Close kills
// the process if it is still running and reaps it; a non-zero exit is logged
// rather than returned because the filter has already shown everything adb
// produced.
package logtail
