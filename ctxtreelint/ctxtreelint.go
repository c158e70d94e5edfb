// Package ctxtreelint provides a go/analysis based analyzer that reports
// discarded cancel functions from ctxtree derivations.
package ctxtreelint

import (
	"errors"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const doc = `check for discarded cancel functions from WithCancel

A child returned by WithCancel settles only through its parent or through
the returned CancelFunc. Code that discards the CancelFunc has produced a
child it can never cancel, whose forwarding registration stays live until
the parent settles. Reported forms: calls in statement position (plain,
go, defer), and assignments or var declarations that blank the second
result. Dispatch is static; calls through method values are not tracked.`

// Analyzer is the main analyzer for ctxtreelint.
var Analyzer = &analysis.Analyzer{
	Name:     "ctxtreelint",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

const withCancelFullName = "(*github.com/NetPo4ki/go-ctxtree/ctxtree.Context).WithCancel"

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	nodeFilter := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.GoStmt)(nil),
		(*ast.DeferStmt)(nil),
		(*ast.AssignStmt)(nil),
		(*ast.ValueSpec)(nil),
	}

	insp.Preorder(nodeFilter, func(node ast.Node) {
		switch n := node.(type) {
		case *ast.ExprStmt:
			// root.WithCancel() in statement position drops both results.
			if call, ok := n.X.(*ast.CallExpr); ok && isWithCancel(pass, call) {
				report(pass, call)
			}
		case *ast.GoStmt:
			if isWithCancel(pass, n.Call) {
				report(pass, n.Call)
			}
		case *ast.DeferStmt:
			if isWithCancel(pass, n.Call) {
				report(pass, n.Call)
			}
		case *ast.AssignStmt:
			// child, _ := root.WithCancel() keeps the child but not the
			// means to settle it.
			if len(n.Rhs) != 1 || len(n.Lhs) != 2 {
				return
			}
			call, ok := n.Rhs[0].(*ast.CallExpr)
			if !ok || !isWithCancel(pass, call) {
				return
			}
			if isBlank(n.Lhs[1]) {
				report(pass, call)
			}
		case *ast.ValueSpec:
			// var child, _ = root.WithCancel(), at any scope.
			if len(n.Values) != 1 || len(n.Names) != 2 {
				return
			}
			call, ok := n.Values[0].(*ast.CallExpr)
			if !ok || !isWithCancel(pass, call) {
				return
			}
			if n.Names[1].Name == "_" {
				report(pass, call)
			}
		}
	})

	return nil, nil
}

func report(pass *analysis.Pass, call *ast.CallExpr) {
	pass.Reportf(call.Pos(), "the cancel function returned by WithCancel is discarded; the child context can never be cancelled")
}

// isWithCancel reports whether call statically resolves to the WithCancel
// method of the ctxtree context type, by full name rather than by
// identifier, so unrelated methods that happen to be called WithCancel
// stay quiet.
func isWithCancel(pass *analysis.Pass, call *ast.CallExpr) bool {
	fn := typeutil.StaticCallee(pass.TypesInfo, call)
	return fn != nil && fn.FullName() == withCancelFullName
}

func isBlank(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == "_"
}
