package cpu

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assignment is a single initial register value.
type Assignment struct {
	Register int
	Value    uint64
}

// R<n>=<v>
var stateRegexp = regexp.MustCompile(`^R(\d+)=(.+)$`)

// stateFields splits an initial state description on white space,
// keeping $(...) expressions whole.
func stateFields(text string) (fields []string) {
	var depth int
	var field strings.Builder

	for _, r := range text {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case unicode.IsSpace(r) && depth == 0:
			if field.Len() > 0 {
				fields = append(fields, field.String())
				field.Reset()
			}
			continue
		}
		field.WriteRune(r)
	}

	if field.Len() > 0 {
		fields = append(fields, field.String())
	}

	return
}

// evalExpression does $(...) evaluations, with the current
// register values predeclared as R1 through R256.
func (rf *RegisterFile) evalExpression(expr string) (value uint64, err error) {
	thread := starlark.Thread{Name: "state"}
	opts := syntax.FileOptions{}
	pred := make(starlark.StringDict, REGISTER_COUNT)
	for n, reg := range rf.Value {
		pred[fmt.Sprintf("R%d", n+1)] = starlark.MakeUint64(reg)
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, "state", "rc="+expr+"\n", pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Uint64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// valueOf returns the value of a literal or $(...) expression.
func (rf *RegisterFile) valueOf(word string) (value uint64, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return rf.evalExpression(word[2 : len(word)-1])
	}

	value, err = strconv.ParseUint(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// ParseAssignment parses a single R<n>=<v> token. Expressions see the
// current register values.
func (rf *RegisterFile) ParseAssignment(token string) (asn Assignment, err error) {
	defer func() {
		if err != nil {
			err = &ErrMalformedState{Token: token, Err: err}
		}
	}()

	match := stateRegexp.FindStringSubmatch(token)
	if match == nil {
		err = ErrStateSyntax
		return
	}

	reg, err := strconv.Atoi(match[1])
	if err != nil || reg < 1 || reg > REGISTER_COUNT {
		err = ErrRegisterInvalid
		return
	}

	value, err := rf.valueOf(match[2])
	if err != nil {
		return
	}

	asn = Assignment{Register: reg, Value: value}

	return
}

// Load applies an initial state description of R<n>=<v> tokens in order.
// On error, the assignments before the failing token remain applied.
func (rf *RegisterFile) Load(text string) (assigned []Assignment, err error) {
	for _, token := range stateFields(text) {
		var asn Assignment
		asn, err = rf.ParseAssignment(token)
		if err != nil {
			return
		}
		rf.Set(asn.Register, asn.Value)
		assigned = append(assigned, asn)
	}

	return
}
