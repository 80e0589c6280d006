package nlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifierBuildIsIdempotent(t *testing.T) {
	c := NewClassifier(DefaultCorpus)
	require.NoError(t, c.Build())
	assert.True(t, c.Ready())

	before, err := c.Classify("casual leave balance")
	require.NoError(t, err)

	require.NoError(t, c.Build())
	after, err := c.Classify("casual leave balance")
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestClassifierLazilyBuilds(t *testing.T) {
	c := NewClassifier(DefaultCorpus)
	assert.False(t, c.Ready())

	result, err := c.Classify("what is my casual leave balance")
	require.NoError(t, err)
	assert.True(t, c.Ready())
	assert.Equal(t, IntentLeaveBalanceCasual, result.Intent)
}

func TestClassifierEmptyCorpus(t *testing.T) {
	c := NewClassifier(nil)
	assert.Error(t, c.Build())
	_, err := c.Classify("anything")
	assert.Error(t, err)
}

func TestClassifyKnownUtterances(t *testing.T) {
	c := NewClassifier(DefaultCorpus)
	require.NoError(t, c.Build())

	cases := []struct {
		utterance string
		intent    Intent
	}{
		{"what is my casual leave balance", IntentLeaveBalanceCasual},
		{"What's my CL balance?", IntentLeaveBalanceCasual},
		{"sick leave balance", IntentLeaveBalanceSick},
		{"what is my ctc", IntentPayrollCTC},
		{"cost to company", IntentPayrollCTC},
		{"work from home policy", IntentPolicyWFH},
		{"wfh policy", IntentPolicyWFH},
		{"who is my manager", IntentPersonalManager},
	}

	for _, tc := range cases {
		result, err := c.Classify(tc.utterance)
		require.NoError(t, err)
		assert.Equal(t, tc.intent, result.Intent, "utterance %q", tc.utterance)
		assert.GreaterOrEqual(t, result.Confidence, 0.6, "utterance %q", tc.utterance)
		assert.LessOrEqual(t, result.Confidence, 1.0, "utterance %q", tc.utterance)
	}
}

func TestClassifyUnknownUtterance(t *testing.T) {
	c := NewClassifier(DefaultCorpus)
	require.NoError(t, c.Build())

	result, err := c.Classify("explain blockchain consensus")
	require.NoError(t, err)
	assert.Equal(t, IntentUnknown, result.Intent)
	assert.Zero(t, result.Confidence)
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := NewClassifier(DefaultCorpus)
	require.NoError(t, c.Build())

	first, err := c.Classify("leave balance")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := c.Classify("leave balance")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid corpus", func(t *testing.T) {
		path := filepath.Join(dir, "corpus.json")
		payload := `[{"utterance":"how much pf is cut","intent":"payroll.breakdown"}]`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

		examples, err := LoadCorpus(path)
		require.NoError(t, err)
		require.Len(t, examples, 1)
		assert.Equal(t, IntentPayrollBreakdown, examples[0].Intent)
	})

	t.Run("unknown intent rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		payload := `[{"utterance":"hello","intent":"payroll.bonus"}]`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

		_, err := LoadCorpus(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCorpus(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}

func TestIntentFamily(t *testing.T) {
	assert.Equal(t, FamilyLeave, IntentLeaveBalanceCasual.Family())
	assert.Equal(t, FamilyPayroll, IntentPayrollNet.Family())
	assert.Equal(t, FamilyPolicy, IntentPolicyGeneral.Family())
	assert.Equal(t, FamilyPersonal, IntentPersonalJoiningDate.Family())
	assert.Equal(t, FamilyUnknown, IntentUnknown.Family())
	assert.False(t, Intent("payroll.bonus").Known())
}
