// Package ptrx holds small pointer helpers for optional fields.
package ptrx

import "time"

func String(s string) *string     { return &s }
func Bool(b bool) *bool           { return &b }
func Int(i int) *int              { return &i }
func Int64(i int64) *int64        { return &i }
func Time(t time.Time) *time.Time { return &t }

// StringValue dereferences p, returning "" when nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// BoolValue dereferences p, returning false when nil.
func BoolValue(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
