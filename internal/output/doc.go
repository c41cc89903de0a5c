// Package output manages run directories and translated file placement.
// It owns the run_{name}_{N} directory naming, the language-code rewrite
// of output filenames and the collision-safe save of translated content.
package output
