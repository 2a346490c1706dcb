package entree

import (
	"bytes"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"
)

type plainDTO struct {
	Name string
}

func TestIsUntouchable(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"byte slice", reflect.TypeOf([]byte(nil)), true},
		{"string", reflect.TypeOf(""), true},
		{"rune slice", reflect.TypeOf([]rune(nil)), true},
		{"io.Reader", ifaceReader, true},
		{"io.ReadCloser", ifaceReadCloser, true},
		{"io.Writer", ifaceWriter, true},
		{"io.WriteCloser", ifaceWriteCloser, true},
		{"io.WriterTo", ifaceWriterTo, true},
		{"http.ResponseWriter", ifaceResponseWriter, true},
		{"*http.Response", reflect.TypeOf(&http.Response{}), true},
		{"plain struct", reflect.TypeOf(plainDTO{}), false},
		{"struct pointer", reflect.TypeOf(&plainDTO{}), false},
		{"map", reflect.TypeOf(map[string]string(nil)), false},
		{"int slice", reflect.TypeOf([]int(nil)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUntouchable(tt.typ); got != tt.want {
				t.Errorf("isUntouchable(%s) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestIsUnreadable(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"bytes buffer pointer", reflect.TypeOf(&bytes.Buffer{}), true},
		{"strings reader", reflect.TypeOf(strings.NewReader("")), true},
		{"reader interface", ifaceReader, true},
		{"read seeker interface", reflect.TypeOf((*io.ReadSeeker)(nil)).Elem(), true},
		{"bytes buffer value", reflect.TypeOf(bytes.Buffer{}), false},
		{"plain struct", reflect.TypeOf(plainDTO{}), false},
		{"string", reflect.TypeOf(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUnreadable(tt.typ); got != tt.want {
				t.Errorf("isUnreadable(%s) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestIsUnwriteable(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"bytes buffer pointer", reflect.TypeOf(&bytes.Buffer{}), true},
		{"strings reader writes itself", reflect.TypeOf(strings.NewReader("")), true},
		{"writer interface", ifaceWriter, true},
		{"response writer interface", ifaceResponseWriter, true},
		{"*http.Response", reflect.TypeOf(&http.Response{}), true},
		{"bytes buffer value", reflect.TypeOf(bytes.Buffer{}), false},
		{"plain struct", reflect.TypeOf(plainDTO{}), false},
		{"struct pointer", reflect.TypeOf(&plainDTO{}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUnwriteable(tt.typ); got != tt.want {
				t.Errorf("isUnwriteable(%s) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestFixedSetsAreDisjointFromDTOs(t *testing.T) {
	typ := reflect.TypeOf(plainDTO{})
	if isUntouchable(typ) || isUnreadable(typ) || isUnwriteable(typ) {
		t.Error("plain DTO should pass every fixed exclusion set")
	}
}
