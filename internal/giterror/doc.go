// Package giterror inspects errors and response statuses produced while talking
// to the GitHub search API. It keeps the string and type sniffing needed to tell
// a network failure from anything else in one place, and gives non-success
// statuses a short label for logs.
package giterror
