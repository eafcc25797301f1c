// Package ui provides terminal input and semantic text formatting for CLI
// output.
//
// Formatters colorize when the terminal supports it and fall back to plain
// decorations when NO_COLOR is set or output is not a TTY:
//
//	ui.Code.Sprint("mailguard login")   // `mailguard login`
//	ui.Highlight.Sprint("a@2925.com")   // 'a@2925.com'
//	ui.Muted.Sprint("expired")          // (expired)
//
// ReadPassword reads a secret without echo from a terminal, or one line from
// piped input. StartSpinner shows progress during key derivation.
package ui
