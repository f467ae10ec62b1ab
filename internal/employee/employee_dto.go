package employee

// CreateEmployeeRequest is the administrator's create form. When both
// Login and Password are non-blank a subscriber account is provisioned
// for the card. Names are deliberately not validated here: the original
// system accepted nameless admin-created cards while registration did
// not, and that asymmetry is kept.
type CreateEmployeeRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`

	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	MiddleName    string `json:"middleName"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	Building      string `json:"building"`
	OfficeNumber  string `json:"officeNumber"`
	InternalPhone string `json:"internalPhone"`
	CityPhone     string `json:"cityPhone"`
	MobilePhone   string `json:"mobilePhone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// UpdateEmployeeRequest carries every mutable field. Updates are
// full-replace: an absent field overwrites the stored value with empty.
type UpdateEmployeeRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	MiddleName    string `json:"middleName"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	Building      string `json:"building"`
	OfficeNumber  string `json:"officeNumber"`
	InternalPhone string `json:"internalPhone"`
	CityPhone     string `json:"cityPhone"`
	MobilePhone   string `json:"mobilePhone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"userId,omitempty"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	MiddleName    string `json:"middleName,omitempty"`
	Position      string `json:"position,omitempty"`
	Department    string `json:"department,omitempty"`
	Building      string `json:"building,omitempty"`
	OfficeNumber  string `json:"officeNumber,omitempty"`
	InternalPhone string `json:"internalPhone,omitempty"`
	CityPhone     string `json:"cityPhone,omitempty"`
	MobilePhone   string `json:"mobilePhone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	UpdatedAt     string `json:"updatedAt"`
}
