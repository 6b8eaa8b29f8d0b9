//go:build !test

package utils

import "github.com/sqweek/dialog"

// AskForFile shows a native open-file dialog and returns the chosen
// path.
func AskForFile(title, startingDir string) (string, error) {
	return dialog.File().SetStartDir(startingDir).Title(title).Load()
}
