package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testOrgId = "7f2a1c9e-1111-4f2f-9d3a-000000000001"

func TestValidateQueryAccepts(t *testing.T) {
	queries := []string{
		"SELECT base_salary FROM payroll_records WHERE organization_id = '" + testOrgId + "' LIMIT 1",
		"select p.base_salary from payroll_records p join employees e on e.id = p.employee_id where p.organization_id = '" + testOrgId + "'",
		"  SELECT leave_type, total_allotted FROM leave_balances WHERE organization_id = '" + testOrgId + "'",
	}

	for _, q := range queries {
		assert.NoError(t, ValidateQuery(q, testOrgId), "query %q", q)
	}
}

func TestValidateQueryRejectsNonSelect(t *testing.T) {
	queries := []string{
		"",
		"UPDATE payroll_records SET base_salary = 0 WHERE organization_id = '" + testOrgId + "'",
		"WITH x AS (SELECT 1) SELECT * FROM x WHERE organization_id = '" + testOrgId + "'",
		"EXPLAIN SELECT 1",
	}

	for _, q := range queries {
		err := ValidateQuery(q, testOrgId)
		assert.ErrorIs(t, err, ErrQueryRejected, "query %q", q)
	}
}

func TestValidateQueryRejectsMutatingKeywords(t *testing.T) {
	queries := []string{
		"SELECT 1; DROP TABLE employees --" + testOrgId,
		"SELECT * FROM employees WHERE organization_id = '" + testOrgId + "'; DELETE FROM employees",
		"SELECT (INSERT INTO x VALUES (1)) WHERE organization_id = '" + testOrgId + "'",
		"SELECT truncate FROM t WHERE organization_id = '" + testOrgId + "'",
	}

	for _, q := range queries {
		err := ValidateQuery(q, testOrgId)
		assert.ErrorIs(t, err, ErrQueryRejected, "query %q", q)
	}
}

func TestValidateQueryAllowsColumnsContainingKeywords(t *testing.T) {
	// "created_at" must not trip the "create" rule: the blacklist matches
	// whole words only.
	q := "SELECT created_at, updated_at FROM policies WHERE organization_id = '" + testOrgId + "'"
	assert.NoError(t, ValidateQuery(q, testOrgId))
}

func TestValidateQueryRequiresOrganizationScope(t *testing.T) {
	err := ValidateQuery("SELECT base_salary FROM payroll_records LIMIT 1", testOrgId)
	assert.ErrorIs(t, err, ErrQueryRejected)

	err = ValidateQuery("SELECT 1", "")
	assert.ErrorIs(t, err, ErrQueryRejected)
}

func TestValidateQueryCaseInsensitiveBlacklist(t *testing.T) {
	q := "SELECT 1 WHERE organization_id = '" + testOrgId + "' AND (dRoP) IS NULL"
	assert.ErrorIs(t, ValidateQuery(q, testOrgId), ErrQueryRejected)
}
