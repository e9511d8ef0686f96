// Package form holds explicit form state for server-rendered forms. State
// only changes through Reduce.
package form

import (
	"net/url"
	"sort"
	"strings"
)

// Values are externally supplied field values keyed by field name.
type Values map[string]string

// Criteria are the submitted values of every registered field.
type Criteria map[string]string

// Action is a state transition understood by Reduce.
type Action interface {
	apply(State) State
}

// Register adds a field to the state. Registering twice keeps the value.
type Register struct {
	Field string
}

// Set assigns a registered field's value. Unregistered fields are ignored.
type Set struct {
	Field string
	Value string
}

// Hydrate assigns every registered field present in Values. Keys that do
// not name a registered field are dropped.
type Hydrate struct {
	Values Values
}

// State is an immutable snapshot of registered fields and their values.
type State struct {
	fields map[string]string
}

// New returns a state with fields registered and empty.
func New(fields ...string) State {
	state := State{}
	for _, field := range fields {
		state = Reduce(state, Register{Field: field})
	}
	return state
}

// Reduce applies actions in order and returns the resulting state. The
// input state is never modified.
func Reduce(state State, actions ...Action) State {
	for _, action := range actions {
		if action == nil {
			continue
		}
		state = action.apply(state)
	}
	return state
}

func (a Register) apply(state State) State {
	field := strings.TrimSpace(a.Field)
	if field == "" || state.Registered(field) {
		return state
	}
	next := state.clone()
	next.fields[field] = ""
	return next
}

func (a Set) apply(state State) State {
	if !state.Registered(a.Field) {
		return state
	}
	next := state.clone()
	next.fields[a.Field] = a.Value
	return next
}

func (a Hydrate) apply(state State) State {
	if len(a.Values) == 0 {
		return state
	}
	next := state.clone()
	for key, value := range a.Values {
		if _, ok := next.fields[key]; ok {
			next.fields[key] = value
		}
	}
	return next
}

// Registered reports whether field is part of the form.
func (s State) Registered(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// Value returns a registered field's value.
func (s State) Value(field string) string {
	return s.fields[field]
}

// Fields returns the registered field names in sorted order.
func (s State) Fields() []string {
	fields := make([]string, 0, len(s.fields))
	for field := range s.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Criteria returns the current value of every registered field. No
// validation is applied; empty values pass through.
func (s State) Criteria() Criteria {
	criteria := make(Criteria, len(s.fields))
	for field, value := range s.fields {
		criteria[field] = value
	}
	return criteria
}

func (s State) clone() State {
	fields := make(map[string]string, len(s.fields)+1)
	for field, value := range s.fields {
		fields[field] = value
	}
	return State{fields: fields}
}

// ValuesFromQuery reads single-valued form values from a query or posted
// form. The last value wins for repeated keys.
func ValuesFromQuery(query url.Values) Values {
	values := make(Values, len(query))
	for key, entries := range query {
		if len(entries) == 0 {
			continue
		}
		values[key] = entries[len(entries)-1]
	}
	return values
}

// Query encodes the non-empty criteria as URL query values.
func (c Criteria) Query() url.Values {
	query := url.Values{}
	for field, value := range c {
		if value == "" {
			continue
		}
		query.Set(field, value)
	}
	return query
}
