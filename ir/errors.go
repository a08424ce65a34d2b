package ir

import "fmt"

// errf is a thin fmt.Errorf wrapper used throughout the package so error
// construction reads uniformly (plain fmt.Errorf, no custom error
// types).
func errf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
