package validator

// Validator validates structs and standalone values.
type Validator interface {
	// Validate validates a struct using its `validate` tags.
	Validate(data any) error
	// ValidateField validates one value against f.Rules. Rules run in order
	// and stop at the first failure.
	ValidateField(f Field) error
}

// Field is a single value checked by tag rules outside of any struct.
type Field struct {
	// Name is the key used in the returned V10ValidationError.
	Name string
	// Label is the human readable name used in messages.
	Label string
	// Value is the value under validation.
	Value any
	// Rules is a validator tag, e.g. "required,email".
	Rules string
	// Other is the value cross-field rules (eqcsfield, necsfield...) compare against.
	Other any
	// OtherName names Other in messages.
	OtherName string
}
