// Package scaffold writes rendered Component and System artifacts to disk for
// the "jam new -o" command. It refuses to clobber existing files unless forced
// and reports non-fatal warnings, such as names that are not valid C#
// identifiers, alongside the list of written files.
package scaffold
