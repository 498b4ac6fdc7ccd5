// Package directive parses accessor options written in Go source.
//
// Container options live in the struct's doc comment:
//
//	//accessor:gen get, set, defaults(all(cp), get_mut(vis=private)), bounds('T: fmt.Stringer')
//
// Field options live in the `access` struct tag or in field doc comments:
//
//	X   int  `access:"get(cp), set(prefix=with)"`
//	Ptr *int `access:"all(ptr_deref), get(ptr_deref=deref_mut)"`
//	//accessor:field skip
//
// The grammar is a list of items separated by commas or spaces. An item is
// a name, a name=value pair or a name(list). Values containing spaces,
// commas or parentheses are quoted with '', "" or backquotes. An empty
// quoted prefix or suffix clears any inherited value.
package directive
