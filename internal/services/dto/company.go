package dto

type UpdateCompanyRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string `json:"description" validate:"omitempty,max=5000"`
	Website        *string `json:"website" validate:"omitempty,url,max=300"`
	LogoURL        *string `json:"logo_url" validate:"omitempty,url,max=300"`
	Location       *string `json:"location" validate:"omitempty,max=200"`
	FoundedYear    *int    `json:"founded_year" validate:"omitempty,min=1800,max=2100"`
	EmployeesCount *string `json:"employees_count" validate:"omitempty,max=50"`
}

type CompanyResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Website        string `json:"website,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	Location       string `json:"location,omitempty"`
	FoundedYear    *int   `json:"founded_year,omitempty"`
	EmployeesCount string `json:"employees_count,omitempty"`
}
