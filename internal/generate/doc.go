// Package generate renders the paired Component and System C# sources that
// jam scaffolds. Base texts and optional fragments are embedded templates
// with @-placeholders; rendering is pure string substitution and never does
// I/O. Writing the artifacts is left to the scaffold package.
package generate
