// Package tmpl fills specialization templates.
//
// A template file is named "<K>.<name>.template": K is the number of
// positional type arguments the template takes. Placeholders are keys
// wrapped in '#'. With K == 1 a key is written "#key#"; with K > 1 it carries
// the argument position, "#key.0#", "#key.1#" and so on. Keys are
// case-sensitive and replacement text is never scanned again.
package tmpl
