//go:build !linux

package pipeline

func renameNoReplace(from, to string) error {
	return renameChecked(from, to)
}
