// Package xerr collects the small set of error and assertion helpers used
// throughout this module, mirroring the error-handling idiom of wrapping
// everything through github.com/pkg/errors so that stack traces survive
// across package boundaries.
package xerr

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Errorf creates a new error annotated with a stack trace, in the style of
// fmt.Errorf.
func Errorf(format string, args ...interface{}) error {
	if len(args) == 0 {
		return errors.New(format)
	}
	return errors.Errorf(format, args...)
}

// Wrapf wraps err with additional context, preserving its stack trace if
// it already has one.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}

// Check logs and re-panics on a non-nil error. It exists for the small
// number of call sites (decode paths, config parsing) where recovering
// gracefully is not an option and the caller wants a single expression.
func Check(err error) {
	if err != nil {
		glog.Fatalf("%+v", err)
	}
}

// Checkf is like Check but attaches a formatted message to the error
// before failing.
func Checkf(err error, format string, args ...interface{}) {
	if err != nil {
		glog.Fatalf("%+v", errors.Wrapf(err, format, args...))
	}
}

// AssertTrue fails fatally if the condition does not hold, in the style of
// the teacher's x.AssertTrue.
func AssertTrue(cond bool, msg string) {
	if !cond {
		glog.Fatalf("assertion failed: %s", msg)
	}
}

// Assertf is AssertTrue with a formatted message.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		glog.Fatalf("assertion failed: %s", fmt.Sprintf(format, args...))
	}
}
