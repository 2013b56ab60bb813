package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/bistroconsulting/bistro/icons"
)

// LoadError reports a content document that could not be decoded.
type LoadError struct {
	Source string
	Line   int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("content: %s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("content: %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ValidationError reports a decoded document that breaks a content rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content: %s: %s", e.Field, e.Message)
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate

	yamlLine = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
			return icons.Has(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Default decodes and validates the bundled content.
func Default() (*Site, error) {
	return Parse("embedded content.yaml", bytes.NewReader(embedded))
}

// MustDefault is Default for package-level initialisation and tests.
func MustDefault() *Site {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// LoadFile reads a content override from disk.
func LoadFile(path string) (*Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse decodes a YAML content document from r and validates it. source
// names the document in errors.
func Parse(source string, r io.Reader) (*Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Site
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Source: source, Err: errors.New("empty document")}
		}
		return nil, &LoadError{Source: source, Line: lineOf(err), Err: err}
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks field rules and the cross-field rules the tags cannot
// express.
func Validate(s *Site) error {
	if err := validatorInstance().Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ValidationError{Field: fieldPath(fe.Namespace()), Message: describe(fe)}
		}
		return err
	}

	popular := 0
	for i, p := range s.Pricing.Plans {
		if p.Popular {
			popular++
		}
		if p.YearlyPrice > p.MonthlyPrice*12 {
			return &ValidationError{
				Field:   fmt.Sprintf("Pricing.Plans[%d].YearlyPrice", i),
				Message: "yearly price must not exceed twelve monthly payments",
			}
		}
	}
	if popular != 1 {
		return &ValidationError{Field: "Pricing.Plans", Message: fmt.Sprintf("want exactly one popular plan, got %d", popular)}
	}
	return nil
}

func fieldPath(ns string) string {
	return strings.TrimPrefix(ns, "Site.")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "icon":
		return fmt.Sprintf("unknown icon %q", fe.Value())
	case "len":
		return "must have exactly " + fe.Param() + " entries"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "email":
		return "must be an email address"
	default:
		return "failed " + fe.Tag() + " rule"
	}
}

func lineOf(err error) int {
	m := yamlLine.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return n
}
