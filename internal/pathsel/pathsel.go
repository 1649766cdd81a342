// Package pathsel selects candidate subtrees from JSON documents with
// JSONPath expressions and hands them to the filter core as leaf containers.
// The path grammar itself is the library's concern, not this module's.
package pathsel

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/tq/internal/filter"
	"github.com/jacoelho/tq/internal/tree"
)

var (
	// ErrInvalidInput indicates an empty body or path expression.
	ErrInvalidInput = errors.New("pathsel: invalid input")

	// ErrSelection indicates the body or path expression could not be processed.
	ErrSelection = errors.New("pathsel: selection error")

	// ErrNotFound indicates the expression matched nothing.
	ErrNotFound = errors.New("pathsel: no match")
)

// ParseBody decodes a JSON payload once so multiple selectors can reuse it.
func ParseBody(body []byte) (any, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: body is empty", ErrInvalidInput)
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON data: %v", ErrSelection, err)
	}

	return data, nil
}

// SelectFromData returns every value matching pathExpr in decoded JSON data.
func SelectFromData(data any, pathExpr string) ([]any, error) {
	if pathExpr == "" {
		return nil, fmt.Errorf("%w: JSONPath expression is empty", ErrInvalidInput)
	}

	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONPath %s: %v", ErrSelection, pathExpr, err)
	}

	return path.Select(data), nil
}

// Select returns every value matching pathExpr in a JSON body.
func Select(body []byte, pathExpr string) ([]any, error) {
	data, err := ParseBody(body)
	if err != nil {
		return nil, err
	}

	return SelectFromData(data, pathExpr)
}

// SelectFirst returns the first match, or ErrNotFound.
func SelectFirst(body []byte, pathExpr string) (any, error) {
	results, err := Select(body, pathExpr)
	if err != nil {
		return nil, err
	}

	if len(results) > 0 {
		return results[0], nil
	}

	return nil, ErrNotFound
}

// Candidates wraps every match in its own leaf container, ready for
// filtering. Each container owns an independent tree value. Plain JSON maps
// carry no entry order, so object members convert in lexicographic key order;
// decode through the document package when source order matters.
func Candidates(body []byte, pathExpr string) ([]*filter.Container, error) {
	matches, err := Select(body, pathExpr)
	if err != nil {
		return nil, err
	}

	out := make([]*filter.Container, 0, len(matches))
	for _, match := range matches {
		value, err := tree.FromInterface(match)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSelection, err)
		}
		out = append(out, filter.New(value, true))
	}

	return out, nil
}
