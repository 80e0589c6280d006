package nlp

import (
	"encoding/json"
	"fmt"
	"os"
)

// TrainingExample pairs a hand-authored utterance with its intent.
type TrainingExample struct {
	Utterance string `json:"utterance"`
	Intent    Intent `json:"intent"`
}

// DefaultCorpus is the built-in training set covering the four intent
// families plus generic salary phrasing mapped to payroll.general.
// Utterances are written post-normalization vocabulary but Build normalizes
// them again, so colloquial forms are fine here too.
var DefaultCorpus = []TrainingExample{
	// personal
	{"what is my employee id", IntentPersonalID},
	{"my employee id", IntentPersonalID},
	{"employee code", IntentPersonalID},
	{"what is my staff id number", IntentPersonalID},
	{"what is my role", IntentPersonalRole},
	{"what is my designation", IntentPersonalRole},
	{"which position do i hold", IntentPersonalRole},
	{"my job title", IntentPersonalRole},
	{"who is my manager", IntentPersonalManager},
	{"who do i report to", IntentPersonalManager},
	{"my manager email", IntentPersonalManager},
	{"reporting manager details", IntentPersonalManager},
	{"which department am i in", IntentPersonalDepartment},
	{"my department", IntentPersonalDepartment},
	{"where is my office location", IntentPersonalDepartment},
	{"my work location", IntentPersonalDepartment},
	{"when did i join", IntentPersonalJoiningDate},
	{"my joining date", IntentPersonalJoiningDate},
	{"date of joining the company", IntentPersonalJoiningDate},

	// leave
	{"casual leave balance", IntentLeaveBalanceCasual},
	{"how many casual leave do i have left", IntentLeaveBalanceCasual},
	{"remaining casual leave", IntentLeaveBalanceCasual},
	{"casual leave remaining this year", IntentLeaveBalanceCasual},
	{"sick leave balance", IntentLeaveBalanceSick},
	{"how many sick leave left", IntentLeaveBalanceSick},
	{"remaining sick leave", IntentLeaveBalanceSick},
	{"medical leave balance", IntentLeaveBalanceSick},
	{"earned leave balance", IntentLeaveBalanceEarned},
	{"how many earned leave left", IntentLeaveBalanceEarned},
	{"remaining earned leave", IntentLeaveBalanceEarned},
	{"leaves pending approval", IntentLeavePending},
	{"how many leave requests are pending", IntentLeavePending},
	{"my pending leave applications", IntentLeavePending},
	{"leave summary", IntentLeaveSummary},
	{"show all my leave balances", IntentLeaveSummary},
	{"full leave report", IntentLeaveSummary},
	{"all leave types balance", IntentLeaveSummary},

	// payroll
	{"what is my base salary", IntentPayrollBase},
	{"basic salary amount", IntentPayrollBase},
	{"my basic pay", IntentPayrollBase},
	{"monthly gross salary", IntentPayrollGross},
	{"what is my gross pay", IntentPayrollGross},
	{"gross salary per month", IntentPayrollGross},
	{"monthly net salary", IntentPayrollNet},
	{"net salary after deductions", IntentPayrollNet},
	{"what do i get after deductions", IntentPayrollNet},
	{"what is my ctc", IntentPayrollCTC},
	{"annual ctc", IntentPayrollCTC},
	{"yearly package amount", IntentPayrollCTC},
	{"salary breakdown", IntentPayrollBreakdown},
	{"full salary structure", IntentPayrollBreakdown},
	{"show my salary components and deductions", IntentPayrollBreakdown},
	{"what is my salary", IntentPayrollGeneral},
	{"how much do i earn", IntentPayrollGeneral},
	{"my salary details", IntentPayrollGeneral},

	// policy
	{"work from home policy", IntentPolicyWFH},
	{"can i work from home", IntentPolicyWFH},
	{"remote work rules", IntentPolicyWFH},
	{"leave policy", IntentPolicyLeave},
	{"what are the leave rules", IntentPolicyLeave},
	{"holiday policy of the company", IntentPolicyLeave},
	{"company policies", IntentPolicyGeneral},
	{"show me the hr policies", IntentPolicyGeneral},
	{"what policies apply to employees", IntentPolicyGeneral},
}

// LoadCorpus reads a JSON corpus file with the same shape as DefaultCorpus.
// Examples carrying intents outside the registry are rejected so a typo in
// the corpus cannot introduce an unroutable intent.
func LoadCorpus(path string) ([]TrainingExample, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var examples []TrainingExample
	if err := json.Unmarshal(raw, &examples); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("corpus %s is empty", path)
	}

	for _, ex := range examples {
		if !ex.Intent.Known() {
			return nil, fmt.Errorf("corpus %s: unknown intent %q for utterance %q", path, ex.Intent, ex.Utterance)
		}
	}

	return examples, nil
}
