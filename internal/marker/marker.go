// Package marker finds type declarations tagged with the plugreg
// processor directive.
package marker

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"
)

// Directive marks a type declaration as a processor that must
// conform to the plugin contract. It takes no arguments and only
// applies to top-level type declarations.
const Directive = "//plugreg:processor"

// prefix is shared by every plugreg directive.
const prefix = "//plugreg:"

// Mark is one marked type declaration.
type Mark struct {
	// Spec is the marked type specification.
	Spec *ast.TypeSpec

	// File is the file declaring Spec.
	File *ast.File
}

// Misuse is a plugreg directive that marks nothing.
type Misuse struct {
	Pos    token.Pos
	Reason string
}

// Result is the outcome of scanning a set of files.
type Result struct {
	// Marked lists marked type declarations in source order.
	Marked []Mark

	// Misuses lists directives that were ignored.
	Misuses []Misuse
}

// Scan walks the top-level declarations of files and collects the
// type declarations carrying Directive.
func Scan(files []*ast.File) Result {
	var res Result

	for _, file := range files {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				for _, c := range directives(d.Doc) {
					res.Misuses = append(res.Misuses, Misuse{
						Pos:    c.Pos(),
						Reason: "directive only applies to type declarations, not functions",
					})
				}
			case *ast.GenDecl:
				scanGenDecl(&res, file, d)
			}
		}
	}

	return res
}

func scanGenDecl(res *Result, file *ast.File, d *ast.GenDecl) {
	if d.Tok != token.TYPE {
		for _, c := range directives(d.Doc) {
			res.Misuses = append(res.Misuses, Misuse{
				Pos:    c.Pos(),
				Reason: "directive only applies to type declarations, not " + d.Tok.String(),
			})
		}
		return
	}

	grouped := d.Lparen.IsValid()
	declMarked := false
	for _, c := range directives(d.Doc) {
		if grouped {
			res.Misuses = append(res.Misuses, Misuse{
				Pos:    c.Pos(),
				Reason: "directive on a grouped type declaration must be placed on the individual type",
			})
			continue
		}
		if ok, reason := valid(c); !ok {
			res.Misuses = append(res.Misuses, Misuse{Pos: c.Pos(), Reason: reason})
			continue
		}
		declMarked = true
	}

	for _, spec := range d.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		marked := declMarked
		for _, c := range directives(ts.Doc) {
			if ok, reason := valid(c); !ok {
				res.Misuses = append(res.Misuses, Misuse{Pos: c.Pos(), Reason: reason})
				continue
			}
			marked = true
		}
		if !marked {
			continue
		}

		if ts.Assign.IsValid() {
			res.Misuses = append(res.Misuses, Misuse{
				Pos:    ts.Pos(),
				Reason: "directive cannot mark type alias " + ts.Name.Name,
			})
			continue
		}
		if _, ok := ts.Type.(*ast.InterfaceType); ok {
			res.Misuses = append(res.Misuses, Misuse{
				Pos:    ts.Pos(),
				Reason: "directive cannot mark interface type " + ts.Name.Name,
			})
			continue
		}
		res.Marked = append(res.Marked, Mark{Spec: ts, File: file})
	}
}

// directives returns the plugreg directive comments of a doc group.
func directives(doc *ast.CommentGroup) []*ast.Comment {
	if doc == nil {
		return nil
	}
	var out []*ast.Comment
	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// valid reports whether c is exactly the processor directive.
func valid(c *ast.Comment) (bool, string) {
	text := strings.TrimRight(c.Text, " \t")
	if text == Directive {
		return true, ""
	}
	if strings.HasPrefix(text, Directive+" ") || strings.HasPrefix(text, Directive+"\t") {
		return false, "directive " + Directive + " takes no arguments"
	}
	return false, "unknown directive " + strings.Fields(text)[0]
}

// TypesIn resolves marks to their type objects using info. Marks
// without a type definition (for example when info is incomplete)
// are skipped.
func TypesIn(info *types.Info, marks []Mark) []*types.TypeName {
	var out []*types.TypeName
	for _, m := range marks {
		obj, ok := info.Defs[m.Spec.Name]
		if !ok {
			continue
		}
		tn, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}
		out = append(out, tn)
	}
	return out
}
