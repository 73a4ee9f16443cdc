// Package notes appends text to a note in the Notes application by running one
// of two AppleScript files through osascript.
//
// Appender owns the argument escaping and the mapping of the script's output to
// a Result. The actual process launch sits behind ScriptRunner so the mapping
// can be tested without spawning anything.
package notes
