package scaffold

import (
	"fmt"
	"unicode"
)

// Keywords that C# does not accept as a bare class name.
var csharpKeywords = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "checked": true,
	"class": true, "const": true, "continue": true, "decimal": true, "default": true,
	"delegate": true, "do": true, "double": true, "else": true, "enum": true,
	"event": true, "explicit": true, "extern": true, "false": true, "finally": true,
	"fixed": true, "float": true, "for": true, "foreach": true, "goto": true,
	"if": true, "implicit": true, "in": true, "int": true, "interface": true,
	"internal": true, "is": true, "lock": true, "long": true, "namespace": true,
	"new": true, "null": true, "object": true, "operator": true, "out": true,
	"override": true, "params": true, "private": true, "protected": true, "public": true,
	"readonly": true, "ref": true, "return": true, "sbyte": true, "sealed": true,
	"short": true, "sizeof": true, "stackalloc": true, "static": true, "string": true,
	"struct": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "uint": true, "ulong": true, "unchecked": true,
	"unsafe": true, "ushort": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "while": true,
}

// CheckIdentifier returns warnings for a name that would not compile as a C#
// class name. It never rejects the name; generation proceeds regardless.
func CheckIdentifier(name string) []string {
	if name == "" {
		return []string{"name is empty; generated classes will be unnamed"}
	}

	var warnings []string
	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			warnings = append(warnings, fmt.Sprintf("name %q starts with a digit", name))
			continue
		}
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			warnings = append(warnings, fmt.Sprintf("name %q contains %q, which is not valid in a C# identifier", name, r))
			break
		}
	}
	if csharpKeywords[name] {
		warnings = append(warnings, fmt.Sprintf("name %q is a reserved C# keyword", name))
	}
	if r := []rune(name)[0]; unicode.IsLower(r) {
		warnings = append(warnings, fmt.Sprintf("name %q is not PascalCase; Unity expects the class name to match the file name", name))
	}
	return warnings
}
