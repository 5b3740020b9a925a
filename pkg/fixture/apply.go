package fixture

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/expr-lang/expr/vm"
	"github.com/getmockd/intercept/pkg/intercept"
	"github.com/getmockd/intercept/pkg/respond"
	"github.com/getmockd/intercept/pkg/rule"
)

// Apply validates the file and registers one rule per spec on the
// interceptor, in file order so earlier rules take precedence.
func (f *File) Apply(ic *intercept.Interceptor) error {
	if err := f.Validate(); err != nil {
		return err
	}
	for i := range f.Rules {
		if err := f.Rules[i].apply(ic); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

func (s *Spec) apply(ic *intercept.Interceptor) error {
	method, err := rule.ParseMethod(s.Method)
	if err != nil {
		return err
	}

	var prog *vm.Program
	if s.When != "" {
		if prog, err = compilePredicate(s.When); err != nil {
			return err
		}
	}

	resp, err := s.buildResponse()
	if err != nil {
		return err
	}
	delay := time.Duration(0)
	if s.Response != nil {
		delay = time.Duration(s.Response.DelayMs) * time.Millisecond
	}

	h := func(ctx context.Context, req *rule.Request, m *rule.Match) (*rule.Response, error) {
		if prog != nil {
			ok, err := evalPredicate(prog, req, m)
			if err != nil {
				return nil, err
			}
			if !ok {
				return respond.PassThrough(), nil
			}
		}
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return resp, nil
	}

	switch rule.Kind(s.Kind) {
	case rule.KindExact:
		ic.Register(s.Pattern, method, h)
	case rule.KindTemplate:
		ic.RegisterTemplate(s.Host, s.Pattern, method, h)
	case rule.KindRegex:
		ic.RegisterRegex(s.Host, s.Pattern, method, h)
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
	return nil
}

// buildResponse materializes the canned response once, at apply time.
func (s *Spec) buildResponse() (*rule.Response, error) {
	if s.PassThrough {
		return respond.PassThrough(), nil
	}

	r := s.Response
	opts := []respond.Option{}
	if r.Status != 0 {
		opts = append(opts, respond.WithStatus(r.Status))
	}
	if r.Reason != "" {
		opts = append(opts, respond.WithReason(r.Reason))
	}
	if len(r.Headers) > 0 {
		opts = append(opts, respond.WithHeaders(r.Headers))
	}

	switch {
	case r.Text != nil:
		return respond.Text(*r.Text, opts...), nil
	case r.JSON != nil:
		return respond.JSON(r.JSON, opts...)
	case r.Base64 != nil:
		data, err := base64.StdEncoding.DecodeString(*r.Base64)
		if err != nil {
			return nil, fmt.Errorf("base64 body: %w", err)
		}
		return respond.Bytes(data, opts...), nil
	default:
		status := r.Status
		if status == 0 {
			status = http.StatusOK
		}
		return respond.Status(status, opts...), nil
	}
}
