package flowsim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAcceptance_OnboardingFlow walks the whole pipeline the way a hosting
// application would: import a document, validate it, build a session,
// inspect the schema, simulate contexts, trace ancestors, and export the
// result.
func TestAcceptance_OnboardingFlow(t *testing.T) {
	const flowJSON = `{
	  "nodes": [
	    {"id": "signup", "position": {"x": 0, "y": 0}, "data": {"label": "Sign Up"}},
	    {"id": "verify", "position": {"x": 200, "y": 0}, "data": {"label": "Verify Email"}},
	    {"id": "onboard", "position": {"x": 400, "y": 0}, "data": {"label": "Onboarding"}},
	    {"id": "billing", "position": {"x": 400, "y": 160}, "data": {"label": "Billing", "description": "paid plans only"}}
	  ],
	  "edges": [
	    {"id": "e-verify", "source": "signup", "target": "verify",
	     "rules": [{"id": "r1", "condition": "email_confirmed", "operator": "is", "value": true}]},
	    {"id": "e-onboard", "source": "verify", "target": "onboard", "rules": []},
	    {"id": "e-billing", "source": "onboard", "target": "billing",
	     "rules": [
	       {"id": "r2", "condition": "plan", "operator": "is_not", "value": "free"},
	       {"id": "r3", "condition": "seats", "operator": "greater_than", "value": 0}
	     ]}
	  ]
	}`

	doc, err := DecodeJSON([]byte(flowJSON))
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	g, err := doc.Graph()
	require.NoError(t, err)

	sess := NewSession(g, WithSessionID("acceptance"))
	ctx := context.Background()

	// Schema: three conditions, sorted by name, types inferred.
	conditions := sess.Conditions(ctx)
	require.Len(t, conditions, 3)
	assert.Equal(t, "email_confirmed", conditions[0].Name)
	assert.Equal(t, ConditionBoolean, conditions[0].Type)
	assert.Equal(t, "plan", conditions[1].Name)
	assert.Equal(t, ConditionEnum, conditions[1].Type)
	assert.Equal(t, "seats", conditions[2].Name)
	assert.Equal(t, ConditionNumber, conditions[2].Type)

	// Untouched context: everything reachable by the default-open policy.
	res := sess.Evaluate(ctx)
	assert.Len(t, res.ReachableNodes, 4)

	// Unconfirmed email cuts the flow at the first gate.
	sess.Set("email_confirmed", false)
	res = sess.Evaluate(ctx)
	assert.Equal(t, map[string]bool{"signup": true}, res.ReachableNodes)
	assert.Equal(t, map[string]bool{
		"e-verify":  false,
		"e-onboard": false,
		"e-billing": false,
	}, res.ValidEdges)

	// A confirmed free-plan user stops before billing.
	sess.Set("email_confirmed", true)
	sess.Set("plan", "free")
	res = sess.Evaluate(ctx)
	assert.True(t, res.ReachableNodes["onboard"])
	assert.False(t, res.ReachableNodes["billing"])

	// Paid plan with seats opens the full flow.
	sess.Set("plan", "team")
	sess.Set("seats", 5)
	res = sess.Evaluate(ctx)
	assert.Len(t, res.ReachableNodes, 4)
	assert.True(t, res.ValidEdges["e-billing"])

	// Trace ignores the simulation entirely.
	sess.Set("email_confirmed", false)
	trace := sess.Trace(ctx, "billing")
	assert.Len(t, trace.Nodes, 4)
	assert.Len(t, trace.Edges, 3)

	// Host edits propagate into the export.
	g.AddNode("done", "Done").AddEdge("e-done", "billing", "done")
	out := FromGraph(g)
	require.NoError(t, out.Validate())

	data, err := out.EncodeJSON()
	require.NoError(t, err)

	back, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Len(t, back.Nodes, 5)
	assert.Len(t, back.Edges, 4)
}
