// Package analyzer provides the arithvet static check: it reports raw
// arithmetic on integer-typed operands, the sites a policy wrapper
// should own.
package analyzer

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "arithvet",
	Doc:  "reports raw integer arithmetic that is not wrapped in an overflow policy",
	Run:  run,
}

// arithTokens are the operators whose overflow behavior the policies
// define. Comparison and logical operators never overflow and are not
// reported.
var arithTokens = map[token.Token]bool{
	token.ADD: true,
	token.SUB: true,
	token.MUL: true,
	token.QUO: true,
	token.REM: true,
	token.SHL: true,
	token.SHR: true,
}

// policyNames are the marker entry points whose arguments are exempt:
// those sites are already spoken for.
var policyNames = map[string]bool{
	"Panicking":  true,
	"Wrapping":   true,
	"Saturating": true,
	"Checked":    true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		wrapped := wrappedRanges(file)

		ast.Inspect(file, func(n ast.Node) bool {
			bin, ok := n.(*ast.BinaryExpr)
			if !ok || !arithTokens[bin.Op] {
				return true
			}
			if wrapped.covers(bin.Pos()) {
				return true
			}
			if !integerOperands(pass, bin) {
				return true
			}
			// constant arithmetic is folded at compile time and cannot
			// overflow at runtime
			if tv, ok := pass.TypesInfo.Types[bin]; ok && tv.Value != nil {
				return true
			}
			pass.Report(analysis.Diagnostic{
				Pos:     bin.Pos(),
				End:     bin.End(),
				Message: fmt.Sprintf("raw integer arithmetic %q without an overflow policy", bin.Op),
			})
			return true
		})
	}
	return nil, nil
}

// posRange is a half-open source range.
type posRange struct {
	from, to token.Pos
}

type rangeSet []posRange

func (rs rangeSet) covers(p token.Pos) bool {
	for _, r := range rs {
		if r.from <= p && p < r.to {
			return true
		}
	}
	return false
}

// wrappedRanges collects the argument ranges of policy invocations,
// matched syntactically as <pkg>.<Policy>(expr).
func wrappedRanges(file *ast.File) rangeSet {
	var rs rangeSet
	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) != 1 {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || !policyNames[sel.Sel.Name] {
			return true
		}
		if _, ok := sel.X.(*ast.Ident); !ok {
			return true
		}
		rs = append(rs, posRange{call.Args[0].Pos(), call.Args[0].End()})
		return true
	})
	return rs
}

// integerOperands reports whether both sides of bin have integer types.
func integerOperands(pass *analysis.Pass, bin *ast.BinaryExpr) bool {
	return isInteger(pass, bin.X) && isInteger(pass, bin.Y)
}

func isInteger(pass *analysis.Pass, expr ast.Expr) bool {
	tv, ok := pass.TypesInfo.Types[expr]
	if !ok || tv.Type == nil {
		return false
	}
	basic, ok := tv.Type.Underlying().(*types.Basic)
	if !ok {
		return false
	}
	return basic.Info()&types.IsInteger != 0
}
