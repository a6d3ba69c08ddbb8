// Package defaults centralizes timeout values used across the module so
// they are tuned in one place instead of scattered through call sites.
package defaults
