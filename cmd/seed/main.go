package main

import (
	"log"
	"os"
	"time"

	"hr-assistant-be/internal/model"
	"hr-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds one demo organization with employees, leave balances, payroll and
// policies so the assistant can be exercised end to end on a fresh DB.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := seed(db); err != nil {
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Seeding completed")
}

func seed(db *gorm.DB) error {
	orgId := uuid.New()
	year := time.Now().Year()

	org := model.Organization{
		Id:       orgId,
		Name:     "Acme Technologies",
		Currency: "INR",
	}
	if err := db.Create(&org).Error; err != nil {
		return err
	}
	color.Cyan("Created organization %s (%s)", org.Name, orgId)

	managerId := uuid.New()
	manager := model.Employee{
		Id:             managerId,
		OrganizationId: orgId,
		UserId:         uuid.New(),
		EmployeeCode:   "EMP-001",
		FullName:       "Anita Desai",
		Email:          "anita.desai@acme.example",
		Role:           "Engineering Manager",
		Department:     "Engineering",
		Location:       "Bengaluru",
		JoiningDate:    time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&manager).Error; err != nil {
		return err
	}

	employee := model.Employee{
		Id:             uuid.New(),
		OrganizationId: orgId,
		UserId:         uuid.New(),
		EmployeeCode:   "EMP-104",
		FullName:       "Priya Sharma",
		Email:          "priya.sharma@acme.example",
		Role:           "Software Engineer",
		Department:     "Engineering",
		Location:       "Pune",
		JoiningDate:    time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		ManagerId:      &managerId,
	}
	if err := db.Create(&employee).Error; err != nil {
		return err
	}
	color.Cyan("Created employees %s, %s", manager.EmployeeCode, employee.EmployeeCode)
	color.Yellow("  login user_id for %s: %s", employee.EmployeeCode, employee.UserId)

	balances := []model.LeaveBalance{
		{Id: uuid.New(), OrganizationId: orgId, EmployeeId: employee.Id, LeaveType: "Casual Leave", TotalAllotted: 12, LeavesTaken: 3, LeavesPendingApproval: 1, Year: year},
		{Id: uuid.New(), OrganizationId: orgId, EmployeeId: employee.Id, LeaveType: "Sick Leave", TotalAllotted: 10, LeavesTaken: 2, LeavesPendingApproval: 0, Year: year},
		{Id: uuid.New(), OrganizationId: orgId, EmployeeId: employee.Id, LeaveType: "Earned Leave", TotalAllotted: 15, LeavesTaken: 5, LeavesPendingApproval: 2, Year: year},
	}
	if err := db.Create(&balances).Error; err != nil {
		return err
	}
	color.Cyan("Created %d leave balances for %d", len(balances), year)

	payroll := model.PayrollRecord{
		Id:                  uuid.New(),
		OrganizationId:      orgId,
		EmployeeId:          employee.Id,
		BaseSalary:          30000,
		HRA:                 12000,
		ConveyanceAllowance: 1600,
		MedicalAllowance:    1250,
		PFDeduction:         3600,
		ESIDeduction:        0,
		ProfessionalTax:     200,
		AnnualCTC:           600000,
	}
	if err := db.Create(&payroll).Error; err != nil {
		return err
	}
	color.Cyan("Created payroll record for %s", employee.EmployeeCode)

	policies := []model.Policy{
		{
			Id:             uuid.New(),
			OrganizationId: orgId,
			Title:          "Work From Home Policy",
			Content:        "Employees may work from home up to three days per week with manager approval. Core hours 11:00-16:00 IST apply on remote days.",
			Keywords:       "work from home,remote,hybrid",
			IsActive:       true,
			LastReviewedAt: time.Now().AddDate(0, -2, 0),
		},
		{
			Id:             uuid.New(),
			OrganizationId: orgId,
			Title:          "Leave Policy",
			Content:        "Casual and sick leaves accrue monthly; earned leaves accrue quarterly. Leaves must be applied at least two working days in advance except sick leave.",
			Keywords:       "leave,vacation,time off",
			IsActive:       true,
			LastReviewedAt: time.Now().AddDate(0, -5, 0),
		},
		{
			Id:             uuid.New(),
			OrganizationId: orgId,
			Title:          "Expense Reimbursement Policy",
			Content:        "Business expenses are reimbursed within two pay cycles when submitted with receipts through the expense portal.",
			Keywords:       "expense,reimbursement,travel",
			IsActive:       true,
			LastReviewedAt: time.Now().AddDate(-1, 0, 0),
		},
	}
	if err := db.Create(&policies).Error; err != nil {
		return err
	}
	color.Cyan("Created %d policies", len(policies))

	return nil
}
