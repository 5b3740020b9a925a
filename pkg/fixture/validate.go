package fixture

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/getmockd/intercept/pkg/rule"
)

// Validate checks the spec for caller-facing construction errors:
// unknown kind or method, unusable pattern, malformed response, or a
// predicate that does not compile. It reports every problem found,
// joined into one error.
func (s *Spec) Validate() error {
	var errs []error

	switch rule.Kind(s.Kind) {
	case rule.KindExact:
		if _, err := url.Parse(s.Pattern); err != nil {
			errs = append(errs, fmt.Errorf("pattern is not a valid URL: %w", err))
		}
		if s.Host != "" {
			errs = append(errs, errors.New("exact rules carry the host in the pattern URL, not a host field"))
		}
	case rule.KindTemplate:
		// Any string splits into segments; nothing to pre-validate.
	case rule.KindRegex:
		if _, err := regexp.Compile(s.Pattern); err != nil {
			errs = append(errs, fmt.Errorf("pattern is not a valid regex: %w", err))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown kind %q", s.Kind))
	}

	if s.Pattern == "" {
		errs = append(errs, errors.New("pattern is required"))
	}
	if _, err := rule.ParseMethod(s.Method); err != nil {
		errs = append(errs, err)
	}

	if s.When != "" {
		if _, err := compilePredicate(s.When); err != nil {
			errs = append(errs, fmt.Errorf("when predicate: %w", err))
		}
	}

	switch {
	case s.PassThrough && s.Response != nil:
		errs = append(errs, errors.New("passThrough and response are mutually exclusive"))
	case !s.PassThrough && s.Response == nil:
		errs = append(errs, errors.New("response is required unless passThrough is set"))
	case s.Response != nil:
		errs = append(errs, s.Response.validate()...)
	}

	return errors.Join(errs...)
}

func (r *ResponseSpec) validate() []error {
	var errs []error

	if r.Status != 0 && (r.Status < 100 || r.Status > 599) {
		errs = append(errs, fmt.Errorf("status %d out of range", r.Status))
	}

	bodies := 0
	if r.Text != nil {
		bodies++
	}
	if r.JSON != nil {
		bodies++
	}
	if r.Base64 != nil {
		bodies++
	}
	if bodies > 1 {
		errs = append(errs, errors.New("at most one of text, json, base64 may be set"))
	}
	if r.Base64 != nil {
		if _, err := base64.StdEncoding.DecodeString(*r.Base64); err != nil {
			errs = append(errs, fmt.Errorf("base64 body: %w", err))
		}
	}
	if r.DelayMs < 0 {
		errs = append(errs, fmt.Errorf("delayMs %d is negative", r.DelayMs))
	}
	return errs
}

// Validate checks every rule in the file. The returned error names the
// offending rule index.
func (f *File) Validate() error {
	var errs []error
	for i := range f.Rules {
		if err := f.Rules[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
