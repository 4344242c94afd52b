// Copyright (c) 2025 assetforge
// SPDX-License-Identifier: Apache-2.0
// This file is part of the assetdump library.

package check_test

import (
	"os"
	"strings"
	"testing"

	"github.com/assetforge/assetdump"
	"github.com/assetforge/assetdump/check"
)

func parseFixture(t *testing.T) *assetdump.Value {
	t.Helper()
	data, err := os.ReadFile("../testdata/navmesh.txt")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	doc, err := assetdump.Parse(data)
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return doc
}

func TestNewBadExpression(t *testing.T) {
	_, err := check.New("[m_Version] ==")
	if err == nil {
		t.Fatalf("got nil, wanted a compile error")
	}
	if !strings.Contains(err.Error(), "error parsing check expression") {
		t.Errorf("error %q does not name the failing expression", err)
	}
}

func TestEvaluate(t *testing.T) {
	doc := parseFixture(t)

	exprs := []string{
		"[m_NavMeshBuildSetting.agentRadius] == 0.5",
		"[m_NavMeshTiles.size] == 2",
		"[m_NavMeshBuildSetting.agentClimb] <= [m_NavMeshBuildSetting.agentHeight]",
		"[m_NavMeshBuildSetting.agentRadius] > 1",
	}
	checker, err := check.New(exprs...)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	results := checker.Evaluate(doc)
	if len(results) != len(exprs) {
		t.Fatalf("got %d results, wanted %d", len(results), len(exprs))
	}
	wantPass := []bool{true, true, true, false}
	for i, res := range results {
		if res.Source != exprs[i] {
			t.Errorf("result %d: source %q, wanted %q", i, res.Source, exprs[i])
		}
		if res.Err != nil {
			t.Errorf("result %d: unexpected error %v", i, res.Err)
		}
		if res.Pass != wantPass[i] {
			t.Errorf("result %d: pass %v, wanted %v", i, res.Pass, wantPass[i])
		}
	}

	if check.Pass(results) {
		t.Errorf("Pass: got true with a failing result present")
	}
	if !check.Pass(results[:3]) {
		t.Errorf("Pass: got false with all results passing")
	}
}

func TestEvaluateNonBoolean(t *testing.T) {
	doc := parseFixture(t)
	results, err := check.Check(doc, "[m_NavMeshBuildSetting.agentRadius] + 1")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if results[0].Err == nil || !strings.Contains(results[0].Err.Error(), "did not yield a boolean") {
		t.Errorf("got %v, wanted a non-boolean error", results[0].Err)
	}
	if results[0].Pass {
		t.Errorf("a non-boolean result must not pass")
	}
}

func TestEvaluateUnknownParameter(t *testing.T) {
	doc := parseFixture(t)
	results, err := check.Check(doc, "[no_such_field] == 1")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if results[0].Err == nil {
		t.Errorf("got nil, wanted an evaluation error for the unknown parameter")
	}
	if results[0].Pass {
		t.Errorf("an errored result must not pass")
	}
}

func TestCheckerReuse(t *testing.T) {
	doc := parseFixture(t)
	checker, err := check.New("[m_Version] == 7")
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		results := checker.Evaluate(doc)
		if !check.Pass(results) {
			t.Errorf("run %d: got a failing result, wanted a pass", i)
		}
	}
}
