// Copyright (c) 2025 assetforge
// SPDX-License-Identifier: Apache-2.0
// This file is part of the assetdump library.

// Package check evaluates assertion expressions against decoded documents.
// Expressions see the document through its flattened scalar paths, so ship
// tooling can verify invariants like
//
//	[m_NavMeshBuildSetting.agentClimb] <= [m_NavMeshBuildSetting.agentHeight]
//
// without declaring any target types. Path segments are joined with dots;
// since dots are operators in the expression language, parameter names are
// written in brackets.
package check

import (
	"fmt"

	"github.com/casbin/govaluate"

	"github.com/assetforge/assetdump"
)

// Checker holds compiled expressions, ready to evaluate against any number
// of decoded documents.
type Checker struct {
	exprs []*compiledExpr
}

type compiledExpr struct {
	source string
	expr   *govaluate.EvaluableExpression
}

// Result is one expression's outcome against one document.
type Result struct {
	// Source is the expression text as given.
	Source string
	// Pass is the boolean the expression evaluated to.
	Pass bool
	// Err is set when the expression could not be evaluated or did not
	// yield a boolean; Pass is false then.
	Err error
}

// New compiles the given assertion expressions. Compilation happens once;
// the Checker can then be reused across documents.
func New(exprs ...string) (*Checker, error) {
	c := &Checker{}
	for _, src := range exprs {
		expr, err := govaluate.NewEvaluableExpression(src)
		if err != nil {
			return nil, fmt.Errorf("error parsing check expression %q: %v", src, err)
		}
		c.exprs = append(c.exprs, &compiledExpr{source: src, expr: expr})
	}
	return c, nil
}

// Evaluate runs every expression against the document's flattened scalars.
// The returned slice has one Result per expression, in the order they were
// given to New.
func (c *Checker) Evaluate(doc *assetdump.Value) []Result {
	params := doc.Flatten("")
	out := make([]Result, 0, len(c.exprs))
	for _, ce := range c.exprs {
		res := Result{Source: ce.source}
		v, err := ce.expr.Evaluate(params)
		switch {
		case err != nil:
			res.Err = fmt.Errorf("error evaluating check expression %q: %v", ce.source, err)
		default:
			if pass, ok := v.(bool); ok {
				res.Pass = pass
			} else {
				res.Err = fmt.Errorf("check expression %q did not yield a boolean (got %T)", ce.source, v)
			}
		}
		out = append(out, res)
	}
	return out
}

// Check compiles exprs and evaluates them against doc in one call.
func Check(doc *assetdump.Value, exprs ...string) ([]Result, error) {
	c, err := New(exprs...)
	if err != nil {
		return nil, err
	}
	return c.Evaluate(doc), nil
}

// Pass reports whether every result passed.
func Pass(results []Result) bool {
	for _, r := range results {
		if r.Err != nil || !r.Pass {
			return false
		}
	}
	return true
}
