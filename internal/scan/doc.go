// Package scan enumerates the files of an input directory tree. Every
// regular file is a translation candidate; an optional selection filter
// restricts the set to paths listed in a batch file.
package scan
