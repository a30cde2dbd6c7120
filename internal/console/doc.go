// Package console implements the interactive session: prompts, menus, the
// metadata summary, download progress and remediation hints.
package console
