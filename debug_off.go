//go:build !fibheapdebug

package fibheap

const debugChecks = false
