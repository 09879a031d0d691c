// Package main exposes schema compilation and validation to
// non-native callers.
//
// Build with:
//
//	go build -buildmode=c-shared -o libjsonschema.so ./ffi
//
// Compiled schemas cross the boundary as opaque integer handles and
// must be released with jsonschema_dispose. Inputs are NUL-terminated
// JSON strings. Any parse, compile, or validation error is reported as
// false (or a zero handle from jsonschema_compile); passing NULL
// anywhere is safe and yields the same.
package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"sync"

	"github.com/DrDeano/jsonschema/pkg/jsonschema"
)

// Go pointers cannot cross the C boundary, so compiled schemas are
// kept behind integer handles.
var (
	handlesMu  sync.Mutex
	handles    = make(map[uintptr]*jsonschema.Schema)
	nextHandle uintptr
)

//export jsonschema_compile
func jsonschema_compile(schemaJSON *C.char) C.uintptr_t {
	if schemaJSON == nil {
		return 0
	}
	s, err := jsonschema.New([]byte(C.GoString(schemaJSON)))
	if err != nil {
		return 0
	}

	handlesMu.Lock()
	defer handlesMu.Unlock()
	nextHandle++
	handles[nextHandle] = s
	return C.uintptr_t(nextHandle)
}

//export jsonschema_validate
func jsonschema_validate(handle C.uintptr_t, instanceJSON *C.char) C.bool {
	if handle == 0 || instanceJSON == nil {
		return false
	}

	handlesMu.Lock()
	s, ok := handles[uintptr(handle)]
	handlesMu.Unlock()
	if !ok {
		return false
	}

	valid, err := s.ValidateJSON([]byte(C.GoString(instanceJSON)))
	if err != nil {
		return false
	}
	return C.bool(valid)
}

//export jsonschema_compile_and_validate
func jsonschema_compile_and_validate(schemaJSON, instanceJSON *C.char) C.bool {
	if schemaJSON == nil || instanceJSON == nil {
		return false
	}

	s, err := jsonschema.New([]byte(C.GoString(schemaJSON)))
	if err != nil {
		return false
	}
	defer s.Release()

	valid, err := s.ValidateJSON([]byte(C.GoString(instanceJSON)))
	if err != nil {
		return false
	}
	return C.bool(valid)
}

//export jsonschema_dispose
func jsonschema_dispose(handle C.uintptr_t) {
	if handle == 0 {
		return
	}

	handlesMu.Lock()
	s, ok := handles[uintptr(handle)]
	delete(handles, uintptr(handle))
	handlesMu.Unlock()

	if ok {
		s.Release()
	}
}

func main() {}
