package fallback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/assistant"
	"hr-assistant-be/pkg/currency"
	"hr-assistant-be/pkg/llm"
)

const groundedSystemPrompt = `You are an HR assistant for %s. Answer the employee's question in at most two sentences, using ONLY the facts below. If the facts do not contain the answer, reply exactly: "I don't have enough information to answer that."

%s`

// hedgingPhrases signal the model could not answer from the grounded
// context, which hands control to the query synthesizer.
var hedgingPhrases = []string{
	"i don't have",
	"i do not have",
	"not enough information",
	"insufficient information",
	"i cannot answer",
	"i can't answer",
	"unable to answer",
	"no information",
}

// Engine is the generative fallback behind the router's confidence gate.
// Tier one answers from a pre-aggregated employee context; when the model
// hedges or the call fails, tier two synthesizes a validated read-only
// query and phrases its result. Every arithmetic figure in the context is
// computed server-side through the same entity methods the deterministic
// handlers use.
type Engine struct {
	provider    llm.Provider
	synthesizer *Synthesizer
	logger      logger.ILogger
}

func NewEngine(provider llm.Provider, log logger.ILogger) *Engine {
	return &Engine{
		provider:    provider,
		synthesizer: NewSynthesizer(provider),
		logger:      log,
	}
}

func (e *Engine) Answer(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, query string) (assistant.Response, error) {
	grounded, err := e.groundedAnswer(ctx, uow, org, employee, query)
	if err == nil && !isHedging(grounded) {
		return assistant.Response{
			Success: true,
			Answer:  grounded,
			Source:  entity.ResponseSourceFallback,
		}, nil
	}
	if err != nil {
		e.logger.Warn("FallbackEngine", "grounded answer failed, trying query synthesis", map[string]interface{}{"error": err.Error()})
	} else {
		e.logger.Info("FallbackEngine", "model hedged, trying query synthesis", nil)
	}

	return e.synthesizedAnswer(ctx, uow, org, employee, query)
}

func (e *Engine) groundedAnswer(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, query string) (string, error) {
	contextBlock, err := e.buildEmployeeContext(ctx, uow, org, employee)
	if err != nil {
		return "", fmt.Errorf("build employee context: %w", err)
	}

	system := fmt.Sprintf(groundedSystemPrompt, org.Name, contextBlock)
	answer, err := e.provider.Complete(ctx, system, query, llm.WithTemperature(0.2))
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("empty grounded answer: %w", llm.ErrUpstream)
	}
	return answer, nil
}

// buildEmployeeContext pre-aggregates everything the model is allowed to
// see: identity, derived pay figures, and leave balances. The model never
// receives raw table access in this tier.
func (e *Engine) buildEmployeeContext(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee) (string, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Employee: %s (%s)", employee.FullName, employee.EmployeeCode))
	if employee.Role != "" {
		sb.WriteString(", " + employee.Role)
	}
	if employee.Department != "" {
		sb.WriteString(", " + employee.Department + " department")
	}
	if !employee.JoiningDate.IsZero() {
		sb.WriteString(", joined " + employee.JoiningDate.Format("02 January 2006"))
	}
	sb.WriteString(".\n")

	payroll, err := uow.PayrollRepository().FindOne(ctx,
		specification.TenantOwnedBy{OrganizationID: org.Id},
		specification.EmployeeOwnedBy{EmployeeID: employee.Id},
	)
	if err != nil {
		return "", err
	}
	if payroll != nil {
		money := func(amount float64) string { return currency.Format(org.Currency, amount) }
		sb.WriteString(fmt.Sprintf("Monthly base salary: %s. Monthly gross salary: %s. Monthly net (take-home) salary: %s. Annual CTC: %s.\n",
			money(payroll.BaseSalary), money(payroll.MonthlyGross()), money(payroll.MonthlyNet()), money(payroll.AnnualCTC)))
	}

	year := time.Now().Year()
	balances, err := uow.LeaveBalanceRepository().FindAll(ctx,
		specification.TenantOwnedBy{OrganizationID: org.Id},
		specification.EmployeeOwnedBy{EmployeeID: employee.Id},
		specification.ByYear{Year: year},
		specification.OrderBy{Field: "leave_type"},
	)
	if err != nil {
		return "", err
	}
	if len(balances) > 0 {
		sb.WriteString(fmt.Sprintf("Leave balances for %d:", year))
		pending := 0
		for _, b := range balances {
			sb.WriteString(fmt.Sprintf(" %s %d remaining of %d;", b.LeaveType, b.Remaining(), b.TotalAllotted))
			pending += b.LeavesPendingApproval
		}
		sb.WriteString(fmt.Sprintf(" %d leave request(s) pending approval.\n", pending))
	}

	return sb.String(), nil
}

func (e *Engine) synthesizedAnswer(ctx context.Context, uow unitofwork.UnitOfWork, org *entity.Organization, employee *entity.Employee, query string) (assistant.Response, error) {
	sql, err := e.synthesizer.Synthesize(ctx, query, org.Id.String(), employee.UserId.String())
	if err != nil {
		return assistant.Response{}, err
	}

	if err := ValidateQuery(sql, org.Id.String()); err != nil {
		// The rejected query and reason stay in the logs only.
		e.logger.Error("FallbackEngine", "synthesized query rejected", map[string]interface{}{
			"reason": err.Error(),
			"query":  sql,
		})
		return assistant.Response{}, err
	}

	rows, err := uow.RawQueryRepository().SelectRows(ctx, sql)
	if err != nil {
		return assistant.Response{}, fmt.Errorf("execute synthesized query: %w", err)
	}

	return assistant.Response{
		Success: len(rows) > 0,
		Answer:  FormatRows(ctx, e.provider, query, rows),
		Source:  entity.ResponseSourceDatabase,
	}, nil
}

func isHedging(answer string) bool {
	lower := strings.ToLower(answer)
	for _, phrase := range hedgingPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
