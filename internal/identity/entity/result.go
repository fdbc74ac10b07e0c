package entity

import "github.com/samber/lo"

// FieldResult is the outcome of one field: valid, or invalid with a reason.
type FieldResult struct {
	Violation Violation `json:"violation,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// Valid returns a passing FieldResult.
func Valid() FieldResult {
	return FieldResult{}
}

// Invalid returns a failing FieldResult.
func Invalid(v Violation, msg string) FieldResult {
	return FieldResult{Violation: v, Message: msg}
}

// IsValid reports whether the field passed every rule.
func (r FieldResult) IsValid() bool {
	return r.Violation == ViolationNone
}

// Result holds one FieldResult per field of a form, in declaration order.
type Result struct {
	form   FormName
	order  []string
	fields map[string]FieldResult
}

// NewResult returns a Result where every field of the form starts valid.
func NewResult(form FormName, fields []string) Result {
	return Result{
		form:  form,
		order: append([]string(nil), fields...),
		fields: lo.SliceToMap(fields, func(name string) (string, FieldResult) {
			return name, Valid()
		}),
	}
}

// Set records the outcome of field. Unknown fields are ignored.
func (r Result) Set(field string, fr FieldResult) {
	if _, ok := r.fields[field]; ok {
		r.fields[field] = fr
	}
}

// Form returns the validated form.
func (r Result) Form() FormName {
	return r.form
}

// Fields returns the field names in declaration order.
func (r Result) Fields() []string {
	return append([]string(nil), r.order...)
}

// Get returns the outcome of field.
func (r Result) Get(field string) (FieldResult, bool) {
	fr, ok := r.fields[field]
	return fr, ok
}

// OK reports whether every field is valid.
func (r Result) OK() bool {
	return lo.EveryBy(r.order, func(name string) bool {
		return r.fields[name].IsValid()
	})
}

// All returns a copy of every field outcome keyed by field name.
func (r Result) All() map[string]FieldResult {
	return lo.Assign(r.fields)
}

// Errors returns the message of every invalid field.
func (r Result) Errors() map[string]string {
	return lo.MapValues(lo.PickBy(r.fields, func(_ string, fr FieldResult) bool {
		return !fr.IsValid()
	}), func(fr FieldResult, _ string) string {
		return fr.Message
	})
}

// Violations returns the violation of every invalid field.
func (r Result) Violations() map[string]Violation {
	return lo.MapValues(lo.PickBy(r.fields, func(_ string, fr FieldResult) bool {
		return !fr.IsValid()
	}), func(fr FieldResult, _ string) Violation {
		return fr.Violation
	})
}
