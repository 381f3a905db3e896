//go:build bitsetcheck

package bitset

const checksEnabled = true
