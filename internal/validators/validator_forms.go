package validators

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"github.com/MKhiriev/sparknest-admin/internal/icons"
	"github.com/MKhiriev/sparknest-admin/models"
)

// Field names of the auth forms.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldName            = "name"
	FieldConfirmPassword = "confirmPassword"
)

type FormValidator struct {
	icons IconChecker
}

// NewFormValidator validates credentials, registrations and drafts. Icon
// fields of drafts must exist in catalog.
func NewFormValidator(catalog IconChecker) Validator {
	return &FormValidator{icons: catalog}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)

	case models.Draft:
		return v.validateDraft(ctx, value, fields...)
	case *models.Draft:
		return v.validateDraft(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *FormValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	checks := map[string]func() error{
		FieldEmail:    func() error { return required(c.Email) },
		FieldPassword: func() error { return required(c.Password) },
	}
	return run([]string{FieldEmail, FieldPassword}, checks, fields)
}

func (v *FormValidator) validateRegistration(_ context.Context, r models.Registration, fields ...string) error {
	checks := map[string]func() error{
		FieldName:     func() error { return required(r.Name) },
		FieldEmail:    func() error { return email(r.Email) },
		FieldPassword: func() error { return required(r.Password) },
		FieldConfirmPassword: func() error {
			if err := required(r.ConfirmPassword); err != nil {
				return err
			}
			if r.ConfirmPassword != r.Password {
				return ErrPasswordMismatch
			}
			return nil
		},
	}
	return run([]string{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}, checks, fields)
}

func (v *FormValidator) validateDraft(_ context.Context, d models.Draft, fields ...string) error {
	if !d.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
	if d.IsNew() && !d.Kind.Creatable() {
		return fmt.Errorf("%w: %s", ErrNotCreatable, d.Kind)
	}

	schema := d.Kind.Fields()
	order := make([]string, 0, len(schema))
	checks := make(map[string]func() error, len(schema))
	for _, f := range schema {
		order = append(order, f.Name)
		checks[f.Name] = func() error {
			value := strings.TrimSpace(d.Values[f.Name])
			if value == "" {
				value = f.Default
			}
			if f.Required {
				if err := required(value); err != nil {
					return err
				}
			}
			if f.Type == models.FieldTypeIcon && value != "" && v.icons != nil && !v.icons.Has(icons.IconName(value)) {
				return fmt.Errorf("%w: %q", ErrUnknownIcon, value)
			}
			return nil
		}
	}
	return run(order, checks, fields)
}

// run applies checks in order, restricted to fields when given, and joins
// the failures.
func run(order []string, checks map[string]func() error, fields []string) error {
	for _, f := range fields {
		if _, ok := checks[f]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var errs []error
	for _, name := range order {
		if len(fields) > 0 && !slices.Contains(fields, name) {
			continue
		}
		if err := checks[name](); err != nil {
			errs = append(errs, &FieldError{Field: name, Err: err})
		}
	}
	return errors.Join(errs...)
}

func required(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrRequiredField
	}
	return nil
}

func email(value string) error {
	if err := required(value); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(value))
	if err != nil || addr.Address != strings.TrimSpace(value) {
		return ErrInvalidEmail
	}
	return nil
}
