package contact

// Field names a single input of the contact form.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldCompany Field = "company"
	FieldPhone   Field = "phone"
	FieldService Field = "service"
	FieldMessage Field = "message"
)

// Fields lists every draft field in form order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldCompany, FieldPhone, FieldService, FieldMessage}
}

// ParseField returns the Field for name, or ErrUnknownField.
func ParseField(name string) (Field, error) {
	for _, f := range Fields() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// Draft is the in-progress content of a contact submission.
type Draft struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company string  `json:"company"`
	Phone   string  `json:"phone"`
	Service Service `json:"service"`
	Message string  `json:"message"`
}

// IsZero reports whether every field is empty.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Get returns the current value of field.
func (d Draft) Get(field Field) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldCompany:
		return d.Company
	case FieldPhone:
		return d.Phone
	case FieldService:
		return string(d.Service)
	case FieldMessage:
		return d.Message
	}
	return ""
}

// Set overwrites one field and leaves the rest untouched.
// The service field only accepts identifiers from ServiceOptions.
func (d *Draft) Set(field Field, value string) error {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldCompany:
		d.Company = value
	case FieldPhone:
		d.Phone = value
	case FieldService:
		s, err := ParseService(value)
		if err != nil {
			return err
		}
		d.Service = s
	case FieldMessage:
		d.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}
