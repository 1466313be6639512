// Package input provides interactive terminal input utilities.
//
// # Usage
//
//	value, err := input.Prompt("Feature path", "features/user-profile")
//	if err != nil {
//	    return err
//	}
//	if value == "" {
//	    return nil // cancelled or left empty
//	}
//
//	if input.Confirm(os.Stdin, "Overwrite ngrxgen.yml?", false) {
//	    // User said yes
//	}
//
// Prompt shows a single-line input box (bubbletea + bubbles/textinput)
// when stdin is a terminal and falls back to reading one line otherwise,
// so piped input works in scripts:
//
//	echo features/user-profile | ngrxgen generate
//
// # Styling
//
// Prompts are cyan and bold, hints gray (lipgloss).
package input
