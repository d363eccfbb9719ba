// Package validation implements the address rule table on top of go-playground/validator.
package validation

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"addressbook/config"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const (
	labelField  = "label"
	tagIsString = "is_string"
	tagBoolean  = "boolean"
)

// AddressValidator validates address field maps against a rule table.
// Rules are validator tags keyed by field name, e.g. "omitempty,is_string,max=140".
type AddressValidator struct {
	validate *validator.Validate
	rules    map[string]string
}

var _ service.AddressValidator = (*AddressValidator)(nil)

// New creates an AddressValidator for the given rule table.
// It fails when a rule references an unknown validator tag.
func New(rules map[string]string) (*AddressValidator, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(tagIsString, isString); err != nil {
		return nil, errors.Wrap(err, "register is_string validation")
	}
	// Replaces the built-in so JSON numbers 0 and 1 are accepted as well.
	if err := validate.RegisterValidation(tagBoolean, isBoolean); err != nil {
		return nil, errors.Wrap(err, "register boolean validation")
	}

	v := &AddressValidator{
		validate: validate,
		rules:    make(map[string]string, len(rules)),
	}

	for field, rule := range rules {
		if err := v.checkRule(rule); err != nil {
			return nil, errors.Wrapf(err, "invalid rule for field %q", field)
		}
		v.rules[field] = rule
	}

	return v, nil
}

// NewAddressValidator builds the validator from the configured rule table.
func NewAddressValidator(cfg *config.Config) (service.AddressValidator, error) {
	rules := config.DefaultAddressFields()
	if cfg.Addresses != nil {
		rules = cfg.Addresses.Fields
	}

	return New(rules)
}

// Rules returns a copy of the rule table.
func (v *AddressValidator) Rules() map[string]string {
	rules := make(map[string]string, len(v.rules))
	for field, rule := range v.rules {
		rules[field] = rule
	}

	return rules
}

// Validate checks the label pre-condition, then every present field against its rule.
// Fields unknown to the rule table are dropped from the result.
func (v *AddressValidator) Validate(fields service.AddressFields) (service.AddressFields, error) {
	if label, ok := fields[labelField]; !ok || label == nil {
		return nil, domainerrors.ErrLabelMissing
	}

	keys := make([]string, 0, len(fields)+len(v.rules))
	for key := range fields {
		keys = append(keys, key)
	}
	for key := range v.rules {
		if !fields.Has(key) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	validated := make(service.AddressFields, len(fields))
	var messages []string

	for _, key := range keys {
		rule, known := v.rules[key]
		if !known {
			continue
		}

		value, present := fields[key]
		if !present && !isRequired(rule) {
			continue
		}

		if err := v.validate.Var(value, rule); err != nil {
			messages = append(messages, fieldMessages(key, err)...)

			continue
		}

		if present {
			validated[key] = value
		}
	}

	if len(messages) > 0 {
		return nil, domainerrors.NewValidationError(messages...)
	}

	return validated, nil
}

// Apply decodes validated fields onto the address.
// Numeric strings and "1"/"0" style booleans are converted. A nil value clears the attribute.
func (v *AddressValidator) Apply(fields service.AddressFields, address *entity.Address) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           address,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return errors.Wrap(err, "create address decoder")
	}

	if err := decoder.Decode(map[string]any(fields)); err != nil {
		return domainerrors.NewValidationError(err.Error())
	}

	return nil
}

// checkRule runs the rule once so an unknown tag surfaces at start-up instead of per request.
func (v *AddressValidator) checkRule(rule string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%v", r)
		}
	}()

	_ = v.validate.Var(nil, rule)

	return nil
}

func isRequired(rule string) bool {
	return slices.Contains(strings.Split(rule, ","), "required")
}

func isString(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String
}

// isBoolean accepts bools, the integral numbers 0 and 1, and strings strconv.ParseBool understands.
func isBoolean(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.Bool:
		return true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() == 0 || field.Int() == 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return field.Uint() == 0 || field.Uint() == 1
	case reflect.Float32, reflect.Float64:
		return field.Float() == 0 || field.Float() == 1
	case reflect.String:
		_, err := strconv.ParseBool(field.String())

		return err == nil
	default:
		return false
	}
}

func fieldMessages(field string, err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{fmt.Sprintf("The %s field is invalid.", attributeName(field))}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, ruleMessage(field, fe.Tag(), fe.Param()))
	}

	return messages
}

func ruleMessage(field, tag, param string) string {
	name := attributeName(field)

	switch tag {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case tagIsString:
		return fmt.Sprintf("The %s field must be a string.", name)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", name, param)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", name, param)
	case "len":
		return fmt.Sprintf("The %s field must be %s characters.", name, param)
	case "alpha":
		return fmt.Sprintf("The %s field must only contain letters.", name)
	case "numeric":
		return fmt.Sprintf("The %s field must be a number.", name)
	case tagBoolean:
		return fmt.Sprintf("The %s field must be true or false.", name)
	default:
		return fmt.Sprintf("The %s field failed the %s rule.", name, tag)
	}
}

func attributeName(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
