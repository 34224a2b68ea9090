package assert

import (
	"reflect"
	"testing"
)

// Equal checks if values are equal
func Equal(t *testing.T, a any, b any) {
	if a == b {
		return
	}
	t.Errorf("Received %v (type %v), expected %v (type %v)",
		a, reflect.TypeOf(a), b, reflect.TypeOf(b))
}

// DeepEqual checks values the == operator cannot, maps and slices included
func DeepEqual(t *testing.T, a any, b any) {
	if reflect.DeepEqual(a, b) {
		return
	}
	t.Errorf("Received %v (type %v), expected %v (type %v)",
		a, reflect.TypeOf(a), b, reflect.TypeOf(b))
}

func True(t *testing.T, value bool, msgAndArgs ...any) bool {
	if value {
		return true
	}
	if len(msgAndArgs) > 0 {
		t.Errorf("Should be true: "+msgAndArgs[0].(string), msgAndArgs[1:]...)
	} else {
		t.Error("Should be true")
	}
	return false
}

func NoError(t *testing.T, err error) bool {
	if err == nil {
		return true
	}
	t.Errorf("Received unexpected error: %s", err)
	return false
}
