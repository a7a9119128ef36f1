// codebuilder assembles indented, line-oriented text such as source code.
// Callers build a tree of blocks, each an ordered list of text lines, blank
// lines and nested blocks, and render it with one indentation unit per
// nesting level. The package knows nothing about the syntax of what it
// emits: delimiters such as braces are ordinary lines supplied by the caller,
// or by InsertScope.
//
// The rules the package follows:
//
// 1. Rendering keeps insertion order exactly. Nothing is sorted, merged or
// dropped.
// 2. A blank line is always empty, whatever its depth. Text lines are
// prefixed with the indentation unit repeated once per level.
// 3. Lines are joined by the line ending; no terminator is added after the
// last line. Add a final blank line if the output needs one.
// 4. A line may not contain a line terminator. Such lines are rejected when
// inserted and the error is reported by Err and by every render call.
// 5. Rendering only reads the tree, so a finished tree can be rendered from
// several goroutines at once. Building one is not safe for concurrent use.
package codebuilder
