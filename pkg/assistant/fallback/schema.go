package fallback

// schemaDescription is the fixed read-only schema the synthesizer exposes
// to the model. It documents only the tables the assistant is allowed to
// read and is the single place to extend when a new table becomes
// queryable.
const schemaDescription = `You can query a PostgreSQL database with these tables:

organizations(id uuid, name text, currency text)
employees(id uuid, organization_id uuid, user_id uuid, employee_code text, full_name text, email text, role text, department text, location text, joining_date date, manager_id uuid)
leave_balances(id uuid, organization_id uuid, employee_id uuid, leave_type text, total_allotted int, leaves_taken int, leaves_pending_approval int, year int)
payroll_records(id uuid, organization_id uuid, employee_id uuid, base_salary numeric, hra numeric, conveyance_allowance numeric, medical_allowance numeric, pf_deduction numeric, esi_deduction numeric, professional_tax numeric, annual_ctc numeric)
policies(id uuid, organization_id uuid, title text, content text, keywords text, is_active boolean, last_reviewed_at timestamp)

leave_type is one of 'Casual Leave', 'Sick Leave', 'Earned Leave'.`
