//go:build fibheapdebug

package fibheap

const debugChecks = true
