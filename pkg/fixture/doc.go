// Package fixture loads interception rules from YAML files, so
// data-driven tests can describe canned responses without writing
// handlers.
//
// A fixture file holds either a single rule or an array of rules:
//
//	kind: template
//	host: api.example.com
//	pattern: /users/:id
//	method: GET
//	when: 'params.id != "0"'
//	response:
//	  status: 200
//	  json:
//	    name: alice
//
// Responses carry a status, optional reason and headers, and at most
// one body form (text, json, or base64-encoded bytes), plus an
// optional delay. A rule may declare passThrough instead of a
// response, and an optional when predicate (an expr expression over
// the incoming request) that turns the rule into a pass-through when
// it evaluates false. Environment variables in the file are expanded
// before parsing.
package fixture
