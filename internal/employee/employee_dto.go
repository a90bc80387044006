package employee

type CreateEmployeeRequest struct {
	FullName         string  `json:"full_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	PositionID       string  `json:"position_id" binding:"required,uuid"`
	ManagerID        *string `json:"manager_id" binding:"omitempty,uuid"`
	EmployeeNumber   string  `json:"employee_number" binding:"omitempty,max=20"`
	Phone            string  `json:"phone" binding:"omitempty,max=30"`
	HireDate         string  `json:"hire_date" binding:"required"`
	EmploymentStatus string  `json:"employment_status" binding:"omitempty,oneof=active on_leave terminated"`
}

type UpdateEmployeeRequest struct {
	FullName         string  `json:"full_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	PositionID       string  `json:"position_id" binding:"required,uuid"`
	ManagerID        *string `json:"manager_id" binding:"omitempty,uuid"`
	EmployeeNumber   string  `json:"employee_number" binding:"omitempty,max=20"`
	Phone            string  `json:"phone" binding:"omitempty,max=30"`
	HireDate         string  `json:"hire_date" binding:"required"`
	EmploymentStatus string  `json:"employment_status" binding:"omitempty,oneof=active on_leave terminated"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeePositionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID               string                      `json:"id"`
	EmployeeNumber   string                      `json:"employee_number"`
	FullName         string                      `json:"full_name"`
	Email            string                      `json:"email"`
	Phone            string                      `json:"phone,omitempty"`
	HireDate         string                      `json:"hire_date"`
	EmploymentStatus string                      `json:"employment_status"`
	CompanyID        string                      `json:"company_id"`
	DepartmentID     string                      `json:"department_id,omitempty"`
	PositionID       string                      `json:"position_id,omitempty"`
	ManagerID        string                      `json:"manager_id,omitempty"`
	Department       *EmployeeDepartmentResponse `json:"department,omitempty"`
	Position         *EmployeePositionResponse   `json:"position,omitempty"`
}
