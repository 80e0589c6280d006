package nlp

// Family groups intents into their handler families. Dispatch happens on
// this tag, not on string-prefix inspection of the intent name.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyPersonal
	FamilyLeave
	FamilyPayroll
	FamilyPolicy
)

func (f Family) String() string {
	switch f {
	case FamilyPersonal:
		return "personal"
	case FamilyLeave:
		return "leave"
	case FamilyPayroll:
		return "payroll"
	case FamilyPolicy:
		return "policy"
	default:
		return "unknown"
	}
}

// Intent is a closed category of user request the classifier can recognize.
type Intent string

const (
	IntentUnknown Intent = ""

	IntentPersonalID          Intent = "personal.id"
	IntentPersonalRole        Intent = "personal.role"
	IntentPersonalManager     Intent = "personal.manager"
	IntentPersonalDepartment  Intent = "personal.department"
	IntentPersonalJoiningDate Intent = "personal.joining_date"

	IntentLeaveBalanceCasual Intent = "leave.balance.casual"
	IntentLeaveBalanceSick   Intent = "leave.balance.sick"
	IntentLeaveBalanceEarned Intent = "leave.balance.earned"
	IntentLeavePending       Intent = "leave.pending"
	IntentLeaveSummary       Intent = "leave.summary"

	IntentPayrollBase      Intent = "payroll.base"
	IntentPayrollGross     Intent = "payroll.gross"
	IntentPayrollNet       Intent = "payroll.net"
	IntentPayrollCTC       Intent = "payroll.ctc"
	IntentPayrollBreakdown Intent = "payroll.breakdown"
	IntentPayrollGeneral   Intent = "payroll.general"

	IntentPolicyWFH     Intent = "policy.wfh"
	IntentPolicyLeave   Intent = "policy.leave"
	IntentPolicyGeneral Intent = "policy.general"
)

// intentFamilies is the authoritative registry. An intent missing here is
// treated as unknown by the router.
var intentFamilies = map[Intent]Family{
	IntentPersonalID:          FamilyPersonal,
	IntentPersonalRole:        FamilyPersonal,
	IntentPersonalManager:     FamilyPersonal,
	IntentPersonalDepartment:  FamilyPersonal,
	IntentPersonalJoiningDate: FamilyPersonal,

	IntentLeaveBalanceCasual: FamilyLeave,
	IntentLeaveBalanceSick:   FamilyLeave,
	IntentLeaveBalanceEarned: FamilyLeave,
	IntentLeavePending:       FamilyLeave,
	IntentLeaveSummary:       FamilyLeave,

	IntentPayrollBase:      FamilyPayroll,
	IntentPayrollGross:     FamilyPayroll,
	IntentPayrollNet:       FamilyPayroll,
	IntentPayrollCTC:       FamilyPayroll,
	IntentPayrollBreakdown: FamilyPayroll,
	IntentPayrollGeneral:   FamilyPayroll,

	IntentPolicyWFH:     FamilyPolicy,
	IntentPolicyLeave:   FamilyPolicy,
	IntentPolicyGeneral: FamilyPolicy,
}

// Family returns the handler family for the intent, or FamilyUnknown if the
// intent is not part of the registry.
func (i Intent) Family() Family {
	if f, ok := intentFamilies[i]; ok {
		return f
	}
	return FamilyUnknown
}

// Known reports whether the intent is part of the closed taxonomy.
func (i Intent) Known() bool {
	_, ok := intentFamilies[i]
	return ok
}

// ClassificationResult is produced once per query and never mutated.
type ClassificationResult struct {
	Intent     Intent
	Confidence float64
	Entities   map[string]string
}
