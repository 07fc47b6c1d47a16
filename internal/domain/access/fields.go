package access

// Field names a mutable attribute of an employee profile.
type Field string

const (
	FieldEmployeeID   Field = "employee_id"
	FieldEmail        Field = "email"
	FieldName         Field = "name"
	FieldDepartment   Field = "department"
	FieldRole         Field = "role"
	FieldPhone        Field = "phone"
	FieldAddress      Field = "address"
	FieldProfilePhoto Field = "profile_photo"
)

var selfEditable = map[Field]bool{
	FieldPhone:        true,
	FieldAddress:      true,
	FieldProfilePhoto: true,
}

var immutable = map[Field]bool{
	FieldEmployeeID: true,
	FieldEmail:      true,
}

// FieldEditable reports whether s may change field on a profile. Identity
// fields stay admin-only on the subject's own profile; employee_id and email
// are never editable.
func FieldEditable(s Subject, field Field, isSelf bool) bool {
	if !s.Authenticated || immutable[field] {
		return false
	}
	if s.isAdmin() {
		return true
	}
	return isSelf && selfEditable[field]
}

// AuthorizeFields checks every field in fields and returns a DeniedError
// naming the first one s may not change.
func AuthorizeFields(s Subject, fields []Field, isSelf bool) error {
	if err := Authorize(s, ResourceEmployeeProfile, ActionEdit, isSelf); err != nil {
		return err
	}
	for _, f := range fields {
		if !FieldEditable(s, f, isSelf) {
			return &DeniedError{
				Resource: ResourceEmployeeProfile,
				Action:   ActionEdit,
				Field:    f,
				Decision: deny("field " + string(f) + " is not editable"),
			}
		}
	}
	return nil
}
