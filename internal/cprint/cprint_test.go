package cprint

import (
	"strings"
	"testing"

	"github.com/schemec/schemec/internal/cdecl"
)

func TestPrintFunDecl(t *testing.T) {
	unit := &cdecl.TranslationUnit{
		Decls: []cdecl.CDecl{
			cdecl.Fun{
				Name:   "lambda_0",
				Return: cdecl.Void{},
				Args: []cdecl.Param{
					{Name: "x", Type: cdecl.ObjectPtr()},
					{Name: "$a0", Type: cdecl.ObjectPtr()},
				},
				Body: []cdecl.CStmt{
					cdecl.Expr{Value: cdecl.FunCallOp{
						Expr: cdecl.MacroCall{Name: "ENV_LOOKUP", Args: []cdecl.CExpr{cdecl.LitInt{Value: 1}}},
						Args: []cdecl.CExpr{cdecl.MacroCall{Name: "ENV_LOOKUP", Args: []cdecl.CExpr{cdecl.LitInt{Value: 0}}}},
					}},
				},
			},
		},
	}

	out := Print(unit)
	if !strings.Contains(out, "void lambda_0(struct object* x, struct object* $a0) {") {
		t.Errorf("missing function signature, got:\n%s", out)
	}
	if !strings.Contains(out, "ENV_LOOKUP(1)(ENV_LOOKUP(0));") {
		t.Errorf("missing call expression, got:\n%s", out)
	}
}

func TestPrintEnvTableEntry(t *testing.T) {
	unit := &cdecl.TranslationUnit{
		Decls: []cdecl.CDecl{
			cdecl.MacroInvocation{Call: cdecl.MacroCall{
				Name: "ENV_ENTRY",
				Args: []cdecl.CExpr{cdecl.LitInt{Value: 0}, cdecl.LitInt{Value: 1}},
			}},
		},
	}
	out := Print(unit)
	if strings.TrimSpace(out) != "ENV_ENTRY(0, 1);" {
		t.Errorf("got %q, want ENV_ENTRY(0, 1);", out)
	}
}
