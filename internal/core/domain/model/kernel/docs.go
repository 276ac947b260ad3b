// Package kernel holds the value objects shared by every granary aggregate.
//
// UUID wraps github.com/google/uuid so that a zero identifier can be told
// apart from a constructed one through Validate.
package kernel
