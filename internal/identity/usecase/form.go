package usecase

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shandysiswandi/formguard/internal/identity/entity"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
)

const (
	defaultPasswordMinLength = 6
	defaultPasswordMaxLength = 12
	defaultPinKeyLength      = 32

	// deniedPasswordChars may never appear in a password.
	deniedPasswordChars = "*?"
)

// field binds a form field to its ordered validator rules.
type field struct {
	name  string
	label string
	rules string
	// same is the field this one must repeat, if any.
	same string
}

type formTable map[entity.FormName][]field

func (t formTable) fieldNames(form entity.FormName) []string {
	return lo.Map(t[form], func(f field, _ int) string { return f.name })
}

func intOrDefault(cfg config.Config, key string, def int) int {
	if cfg == nil {
		return def
	}
	if v := cfg.GetInt(key); v > 0 {
		return v
	}
	return def
}

func newFormTable(cfg config.Config) formTable {
	pwMin := intOrDefault(cfg, "modules.identity.password_min_length", defaultPasswordMinLength)
	pwMax := intOrDefault(cfg, "modules.identity.password_max_length", defaultPasswordMaxLength)
	pinLen := intOrDefault(cfg, "modules.identity.pin_key_length", defaultPinKeyLength)

	return formTable{
		entity.FormRegistration: {
			{name: "email", label: "Email", rules: "required,notblank,email"},
			{name: "firstname", label: "First name", rules: "required,notblank,personname"},
			{name: "lastname", label: "Last name", rules: "required,notblank,personname"},
			{name: "phone", label: "Phone number", rules: "required,notblank,phone"},
			{
				name:  "password",
				label: "Password",
				rules: fmt.Sprintf("required,notblank,runelen=%d~%d,denychars=%s,complexpassword", pwMin, pwMax, deniedPasswordChars),
			},
			{name: "confirm_password", label: "Confirm password", rules: "required,notblank,eqcsfield", same: "password"},
			{name: "pin_key", label: "pin key", rules: fmt.Sprintf("required,notblank,runelen=%d", pinLen)},
		},
		entity.FormLogin: {
			{name: "email", label: "Email", rules: "required,notblank,email"},
			{name: "password", label: "Password", rules: "required,notblank"},
			{name: "pin_key", label: "pin key", rules: "required,notblank"},
		},
	}
}
