// Package cprint renders a cdecl.TranslationUnit to C source text: the
// printer collaborator named in spec.md §6 ("Output to C printer").
package cprint

import (
	"fmt"
	"strings"

	"github.com/schemec/schemec/internal/cdecl"
)

// Print renders unit as a complete C translation unit, one declaration
// per top-level form in the order the emitter produced them.
func Print(unit *cdecl.TranslationUnit) string {
	var b strings.Builder
	for i, d := range unit.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		printDecl(&b, d)
	}
	return b.String()
}

func printDecl(b *strings.Builder, d cdecl.CDecl) {
	switch decl := d.(type) {
	case cdecl.Fun:
		fmt.Fprintf(b, "%s %s(%s) {\n", printType(decl.Return), decl.Name, printParams(decl.Args))
		for _, stmt := range decl.Body {
			b.WriteString("    ")
			printStmt(b, stmt)
		}
		b.WriteString("}\n")

	case cdecl.MacroInvocation:
		printExpr(b, decl.Call)
		b.WriteString(";\n")

	default:
		fmt.Fprintf(b, "/* unrecognized declaration %T */\n", d)
	}
}

func printParams(params []cdecl.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = printType(p.Type) + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

func printType(t cdecl.CType) string {
	switch ty := t.(type) {
	case cdecl.Void:
		return "void"
	case cdecl.Ptr:
		return printType(ty.To) + "*"
	case cdecl.Struct:
		return "struct " + ty.Name
	default:
		return fmt.Sprintf("/* unrecognized type %T */", t)
	}
}

func printStmt(b *strings.Builder, s cdecl.CStmt) {
	switch stmt := s.(type) {
	case cdecl.Expr:
		printExpr(b, stmt.Value)
		b.WriteString(";\n")
	default:
		fmt.Fprintf(b, "/* unrecognized statement %T */;\n", s)
	}
}

func printExpr(b *strings.Builder, e cdecl.CExpr) {
	switch expr := e.(type) {
	case cdecl.LitStr:
		b.WriteString(expr.Value)
	case cdecl.LitInt:
		fmt.Fprintf(b, "%d", expr.Value)
	case cdecl.FunCallOp:
		printExpr(b, expr.Expr)
		b.WriteString("(")
		for i, a := range expr.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			printExpr(b, a)
		}
		b.WriteString(")")
	case cdecl.MacroCall:
		b.WriteString(expr.Name)
		b.WriteString("(")
		for i, a := range expr.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			printExpr(b, a)
		}
		b.WriteString(")")
	default:
		fmt.Fprintf(b, "/* unrecognized expr %T */", e)
	}
}
