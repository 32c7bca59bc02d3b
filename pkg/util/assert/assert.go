package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()

	if reflect.DeepEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %#v, actual: %#v", expected, actual)
	fail(t, msg)
}

// NoError errors if err is not nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()

	if err == nil {
		return
	}

	t.Errorf("unexpected error: %v", err)
	fail(t, msg)
}

// ErrorAs errors unless err has a cause in its chain of type E, which is then
// returned.
func ErrorAs[E error](t *testing.T, err error, msg ...any) E {
	t.Helper()

	var target E

	if err == nil {
		t.Errorf("expected error of type %T, got none", target)
		fail(t, msg)
	} else if !errors.As(err, &target) {
		t.Errorf("expected error of type %T, got %T (%v)", target, err, err)
		fail(t, msg)
	}

	return target
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if condition {
		return
	}

	t.Errorf("condition is false")
	fail(t, msg)
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if !condition {
		return
	}

	t.Errorf("condition is true")
	fail(t, msg)
}

func fail(t *testing.T, msg []any) {
	t.Helper()

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}
